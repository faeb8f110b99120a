package request

import (
	"careerlaunch/internal/domain/recruiter"

	"github.com/jinzhu/copier"
)

type CreateJobRequest struct {
	Title          string              `json:"title" binding:"required,max=200"`
	Company        string              `json:"company" binding:"required,max=200"`
	Location       string              `json:"location" binding:"max=200"`
	Type           recruiter.JobType   `json:"type" binding:"required,oneof=Full-time Part-time Contract Temporary Internship Remote"`
	Salary         string              `json:"salary"`
	Description    string              `json:"description"`
	Requirements   string              `json:"requirements"`
	Industry       string              `json:"industry"`
	SkillsRequired []string            `json:"skillsRequired"`
	Status         recruiter.JobStatus `json:"status" binding:"omitempty,oneof=draft active paused closed"`
}

type UpdateJobRequest struct {
	Title          *string              `json:"title" binding:"omitempty,min=1,max=200"`
	Company        *string              `json:"company" binding:"omitempty,min=1,max=200"`
	Location       *string              `json:"location" binding:"omitempty,max=200"`
	Type           *recruiter.JobType   `json:"type" binding:"omitempty,oneof=Full-time Part-time Contract Temporary Internship Remote"`
	Salary         *string              `json:"salary"`
	Description    *string              `json:"description"`
	Requirements   *string              `json:"requirements"`
	Industry       *string              `json:"industry"`
	SkillsRequired *[]string            `json:"skillsRequired"`
	Status         *recruiter.JobStatus `json:"status" binding:"omitempty,oneof=draft active paused closed"`
}

type SearchJobsQuery struct {
	Query    string            `form:"q"`
	Type     recruiter.JobType `form:"type"`
	Location string            `form:"location"`
	Industry string            `form:"industry"`
}

func (r *CreateJobRequest) ToDomain() (recruiter.JobDraft, error) {
	var d recruiter.JobDraft
	err := copier.Copy(&d, r)
	return d, err
}

func (r *UpdateJobRequest) ToDomain() (recruiter.JobPatch, error) {
	var p recruiter.JobPatch
	err := copier.Copy(&p, r)
	return p, err
}

func (q *SearchJobsQuery) ToDomain() (string, recruiter.JobFilter) {
	return q.Query, recruiter.JobFilter{Type: q.Type, Location: q.Location, Industry: q.Industry}
}
