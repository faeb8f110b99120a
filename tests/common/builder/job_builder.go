//go:build unit || e2e

package builder

import (
	"time"

	"careerlaunch/internal/domain/recruiter"
	reqdto "careerlaunch/internal/handler/dto/request"
)

type JobBuilder struct {
	Title          string
	Company        string
	Location       string
	Type           recruiter.JobType
	Salary         string
	Description    string
	Industry       string
	SkillsRequired []string
	Status         recruiter.JobStatus
}

func NewJobBuilder() *JobBuilder {
	return &JobBuilder{
		Title:          "Backend Engineer",
		Company:        "Acme Corp",
		Location:       "Remote",
		Type:           recruiter.JobTypeFullTime,
		Salary:         "$120,000 - $150,000",
		Description:    "Build services in Go",
		Industry:       "Technology",
		SkillsRequired: []string{"Go", "PostgreSQL"},
		Status:         recruiter.JobStatusActive,
	}
}

func (b *JobBuilder) With(mutate func(*JobBuilder)) *JobBuilder {
	mutate(b)
	return b
}

func (b *JobBuilder) AsDraft() *JobBuilder {
	b.Status = recruiter.JobStatusDraft
	return b
}

// Build methods
func (b *JobBuilder) BuildDraft() recruiter.JobDraft {
	return recruiter.JobDraft{
		Title:          b.Title,
		Company:        b.Company,
		Location:       b.Location,
		Type:           b.Type,
		Salary:         b.Salary,
		Description:    b.Description,
		Industry:       b.Industry,
		SkillsRequired: b.SkillsRequired,
		Status:         b.Status,
	}
}

func (b *JobBuilder) BuildDomain(id string, now time.Time) (recruiter.Job, error) {
	return recruiter.NewJob(id, b.BuildDraft(), now)
}

func (b *JobBuilder) BuildCreateRequestDTO() reqdto.CreateJobRequest {
	return reqdto.CreateJobRequest{
		Title:          b.Title,
		Company:        b.Company,
		Location:       b.Location,
		Type:           b.Type,
		Salary:         b.Salary,
		Description:    b.Description,
		Industry:       b.Industry,
		SkillsRequired: b.SkillsRequired,
		Status:         b.Status,
	}
}
