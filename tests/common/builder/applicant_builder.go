//go:build unit || e2e

package builder

import (
	"careerlaunch/internal/domain/recruiter"
	reqdto "careerlaunch/internal/handler/dto/request"
)

type ApplicantBuilder struct {
	JobID      string
	Name       string
	Email      string
	Phone      string
	Experience int
	Skills     []string
	Education  string
}

func NewApplicantBuilder() *ApplicantBuilder {
	return &ApplicantBuilder{
		JobID:      "job-1",
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "(555) 010-0000",
		Experience: 4,
		Skills:     []string{"Go", "Kubernetes"},
		Education:  "BSc Mathematics",
	}
}

func (b *ApplicantBuilder) With(mutate func(*ApplicantBuilder)) *ApplicantBuilder {
	mutate(b)
	return b
}

func (b *ApplicantBuilder) ForJob(jobID string) *ApplicantBuilder {
	b.JobID = jobID
	return b
}

// Build methods
func (b *ApplicantBuilder) BuildDraft() recruiter.ApplicantDraft {
	return recruiter.ApplicantDraft{
		JobID:      b.JobID,
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Experience: b.Experience,
		Skills:     b.Skills,
		Education:  b.Education,
	}
}

func (b *ApplicantBuilder) BuildCreateRequestDTO() reqdto.CreateApplicantRequest {
	return reqdto.CreateApplicantRequest{
		JobID:      b.JobID,
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Experience: b.Experience,
		Skills:     b.Skills,
		Education:  b.Education,
	}
}
