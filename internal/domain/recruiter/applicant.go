package recruiter

import (
	"slices"
	"strings"
	"time"

	"careerlaunch/internal/pkg/patch"
)

type Applicant struct {
	ID              string          `json:"id"`
	JobID           string          `json:"jobId"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	ResumeURL       string          `json:"resumeUrl"`
	AppliedDate     time.Time       `json:"appliedDate"`
	Status          ApplicantStatus `json:"status"`
	Notes           string          `json:"notes"`
	Experience      int             `json:"experience"`
	CoverLetter     string          `json:"coverLetter"`
	Skills          []string        `json:"skills"`
	Education       string          `json:"education"`
	LastContactDate *time.Time      `json:"lastContactDate"`
}

func (a Applicant) Clone() Applicant {
	a.Skills = slices.Clone(a.Skills)
	if a.LastContactDate != nil {
		d := *a.LastContactDate
		a.LastContactDate = &d
	}
	return a
}

type ApplicantDraft struct {
	JobID       string
	Name        string
	Email       string
	Phone       string
	ResumeURL   string
	Notes       string
	Experience  int
	CoverLetter string
	Skills      []string
	Education   string
}

// ApplicantPatch edits profile fields. Status has its own operation.
type ApplicantPatch struct {
	Name        *string
	Email       *string
	Phone       *string
	ResumeURL   *string
	Notes       *string
	Experience  *int
	CoverLetter *string
	Skills      *[]string
	Education   *string
}

func NewApplicant(id string, d ApplicantDraft, now time.Time) (Applicant, error) {
	if d.Skills == nil {
		d.Skills = []string{}
	}
	a := Applicant{
		ID:          id,
		JobID:       d.JobID,
		Name:        strings.TrimSpace(d.Name),
		Email:       strings.TrimSpace(d.Email),
		Phone:       d.Phone,
		ResumeURL:   d.ResumeURL,
		AppliedDate: now,
		Status:      ApplicantStatusNew,
		Notes:       d.Notes,
		Experience:  d.Experience,
		CoverLetter: d.CoverLetter,
		Skills:      slices.Clone(d.Skills),
		Education:   d.Education,
	}
	if err := a.Validate(); err != nil {
		return Applicant{}, err
	}
	return a, nil
}

func (a Applicant) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if a.Experience < 0 {
		return ErrNegativeExperience
	}
	if !a.Status.IsValid() {
		return ErrInvalidApplicantStatus
	}
	return nil
}

func (a Applicant) Apply(p ApplicantPatch) (Applicant, error) {
	out := a
	out.Name = patch.Coalesce(p.Name, a.Name)
	out.Email = patch.Coalesce(p.Email, a.Email)
	out.Phone = patch.Coalesce(p.Phone, a.Phone)
	out.ResumeURL = patch.Coalesce(p.ResumeURL, a.ResumeURL)
	out.Notes = patch.Coalesce(p.Notes, a.Notes)
	out.Experience = patch.Coalesce(p.Experience, a.Experience)
	out.CoverLetter = patch.Coalesce(p.CoverLetter, a.CoverLetter)
	out.Skills = patch.CoalesceSlice(p.Skills, a.Skills)
	out.Education = patch.Coalesce(p.Education, a.Education)

	if err := out.Validate(); err != nil {
		return Applicant{}, err
	}
	return out, nil
}

// SetStatus allows any transition; every change counts as contact with the candidate.
func (a *Applicant) SetStatus(s ApplicantStatus, now time.Time) error {
	if !s.IsValid() {
		return ErrInvalidApplicantStatus
	}
	a.Status = s
	a.LastContactDate = &now
	return nil
}

func CountApplicantsByStatus(applicants []Applicant, s ApplicantStatus) int {
	n := 0
	for _, a := range applicants {
		if a.Status == s {
			n++
		}
	}
	return n
}
