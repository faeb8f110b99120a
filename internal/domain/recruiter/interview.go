package recruiter

import (
	"errors"
	"slices"
	"time"

	"careerlaunch/internal/pkg/patch"
)

var ErrInterviewNotScheduled = errors.New("interview is not scheduled")

type Interview struct {
	ID            string          `json:"id"`
	ApplicantID   string          `json:"applicantId"`
	ApplicantName string          `json:"applicantName"`
	JobID         string          `json:"jobId"`
	JobTitle      string          `json:"jobTitle"`
	Date          time.Time       `json:"date"`
	Duration      int             `json:"duration"` // minutes
	Type          string          `json:"type"`
	Interviewers  []string        `json:"interviewers"`
	Location      string          `json:"location"`
	Notes         string          `json:"notes"`
	Status        InterviewStatus `json:"status"`
	Feedback      string          `json:"feedback,omitempty"`
}

func (iv Interview) Clone() Interview {
	iv.Interviewers = slices.Clone(iv.Interviewers)
	return iv
}

type InterviewDraft struct {
	ApplicantID  string
	Date         time.Time
	Duration     int
	Type         string
	Interviewers []string
	Location     string
	Notes        string
}

type InterviewPatch struct {
	Date         *time.Time
	Duration     *int
	Type         *string
	Interviewers *[]string
	Location     *string
	Notes        *string
}

// NewInterview schedules an interview, copying the candidate name and job
// title from the referenced records.
func NewInterview(id string, d InterviewDraft, applicant Applicant, job Job) (Interview, error) {
	if d.Interviewers == nil {
		d.Interviewers = []string{}
	}
	iv := Interview{
		ID:            id,
		ApplicantID:   applicant.ID,
		ApplicantName: applicant.Name,
		JobID:         job.ID,
		JobTitle:      job.Title,
		Date:          d.Date,
		Duration:      d.Duration,
		Type:          d.Type,
		Interviewers:  slices.Clone(d.Interviewers),
		Location:      d.Location,
		Notes:         d.Notes,
		Status:        InterviewScheduled,
	}
	if err := iv.Validate(); err != nil {
		return Interview{}, err
	}
	return iv, nil
}

func (iv Interview) Validate() error {
	if iv.Date.IsZero() {
		return ErrMissingDate
	}
	if iv.Duration <= 0 {
		return ErrInvalidDuration
	}
	if !iv.Status.IsValid() {
		return ErrInvalidInterviewStatus
	}
	return nil
}

func (iv Interview) Apply(p InterviewPatch) (Interview, error) {
	out := iv
	out.Date = patch.Coalesce(p.Date, iv.Date)
	out.Duration = patch.Coalesce(p.Duration, iv.Duration)
	out.Type = patch.Coalesce(p.Type, iv.Type)
	out.Interviewers = patch.CoalesceSlice(p.Interviewers, iv.Interviewers)
	out.Location = patch.Coalesce(p.Location, iv.Location)
	out.Notes = patch.Coalesce(p.Notes, iv.Notes)

	if err := out.Validate(); err != nil {
		return Interview{}, err
	}
	return out, nil
}

func (iv *Interview) Complete(feedback string) error {
	if iv.Status != InterviewScheduled {
		return ErrInterviewNotScheduled
	}
	iv.Status = InterviewCompleted
	iv.Feedback = feedback
	return nil
}

func (iv *Interview) Cancel() error {
	if iv.Status != InterviewScheduled {
		return ErrInterviewNotScheduled
	}
	iv.Status = InterviewCancelled
	return nil
}

func CountInterviewsByStatus(interviews []Interview, s InterviewStatus) int {
	n := 0
	for _, iv := range interviews {
		if iv.Status == s {
			n++
		}
	}
	return n
}
