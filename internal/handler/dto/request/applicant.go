package request

import (
	"careerlaunch/internal/domain/recruiter"

	"github.com/jinzhu/copier"
)

type CreateApplicantRequest struct {
	JobID       string   `json:"jobId" binding:"required"`
	Name        string   `json:"name" binding:"required,max=200"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone"`
	ResumeURL   string   `json:"resumeUrl" binding:"omitempty,url"`
	Notes       string   `json:"notes"`
	Experience  int      `json:"experience" binding:"min=0"`
	CoverLetter string   `json:"coverLetter"`
	Skills      []string `json:"skills"`
	Education   string   `json:"education"`
}

type UpdateApplicantRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=200"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Phone       *string   `json:"phone"`
	ResumeURL   *string   `json:"resumeUrl" binding:"omitempty,url"`
	Notes       *string   `json:"notes"`
	Experience  *int      `json:"experience" binding:"omitempty,min=0"`
	CoverLetter *string   `json:"coverLetter"`
	Skills      *[]string `json:"skills"`
	Education   *string   `json:"education"`
}

type UpdateApplicantStatusRequest struct {
	Status recruiter.ApplicantStatus `json:"status" binding:"required,oneof=new review interview offer rejected hired"`
}

func (r *CreateApplicantRequest) ToDomain() (recruiter.ApplicantDraft, error) {
	var d recruiter.ApplicantDraft
	err := copier.Copy(&d, r)
	return d, err
}

func (r *UpdateApplicantRequest) ToDomain() (recruiter.ApplicantPatch, error) {
	var p recruiter.ApplicantPatch
	err := copier.Copy(&p, r)
	return p, err
}
