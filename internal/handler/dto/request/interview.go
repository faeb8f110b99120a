package request

import (
	"time"

	"careerlaunch/internal/domain/recruiter"

	"github.com/jinzhu/copier"
)

type ScheduleInterviewRequest struct {
	ApplicantID  string    `json:"applicantId" binding:"required"`
	Date         time.Time `json:"date" binding:"required"`
	Duration     int       `json:"duration" binding:"required,min=1,max=480"`
	Type         string    `json:"type"`
	Interviewers []string  `json:"interviewers"`
	Location     string    `json:"location"`
	Notes        string    `json:"notes"`
}

type UpdateInterviewRequest struct {
	Date         *time.Time `json:"date"`
	Duration     *int       `json:"duration" binding:"omitempty,min=1,max=480"`
	Type         *string    `json:"type"`
	Interviewers *[]string  `json:"interviewers"`
	Location     *string    `json:"location"`
	Notes        *string    `json:"notes"`
}

type CompleteInterviewRequest struct {
	Feedback string `json:"feedback" binding:"max=5000"`
}

func (r *ScheduleInterviewRequest) ToDomain() (recruiter.InterviewDraft, error) {
	var d recruiter.InterviewDraft
	err := copier.Copy(&d, r)
	return d, err
}

func (r *UpdateInterviewRequest) ToDomain() (recruiter.InterviewPatch, error) {
	var p recruiter.InterviewPatch
	err := copier.Copy(&p, r)
	return p, err
}
