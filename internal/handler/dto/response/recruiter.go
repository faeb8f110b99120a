package response

import (
	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/state"
	"careerlaunch/internal/usecase"
)

type JobListResponse struct {
	Jobs       []recruiter.Job `json:"jobs"`
	TotalJobs  int             `json:"totalJobs"`
	ActiveJobs int             `json:"activeJobs"`
	Error      string          `json:"error,omitempty"`
}

type JobSearchResponse struct {
	Jobs  []recruiter.Job `json:"jobs"`
	Total int             `json:"total"`
}

type ApplicantListResponse struct {
	Applicants      []recruiter.Applicant `json:"applicants"`
	TotalApplicants int                   `json:"totalApplicants"`
	NewApplicants   int                   `json:"newApplicants"`
	Error           string                `json:"error,omitempty"`
}

type EmailTemplateListResponse struct {
	Templates      []recruiter.EmailTemplate             `json:"templates"`
	TotalTemplates int                                   `json:"totalTemplates"`
	Defaults       map[recruiter.TemplateCategory]string `json:"defaults"`
	Error          string                                `json:"error,omitempty"`
}

type RenderedEmailResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type InterviewListResponse struct {
	Interviews []recruiter.Interview `json:"interviews"`
	Total      int                   `json:"total"`
	Scheduled  int                   `json:"scheduled"`
	Completed  int                   `json:"completed"`
	Cancelled  int                   `json:"cancelled"`
	Error      string                `json:"error,omitempty"`
}

func FromJobsSlice(s state.JobsSlice) JobListResponse {
	return JobListResponse{Jobs: s.Jobs, TotalJobs: s.TotalJobs, ActiveJobs: s.ActiveJobs, Error: s.Error}
}

func FromJobSearch(jobs []recruiter.Job) JobSearchResponse {
	if jobs == nil {
		jobs = []recruiter.Job{}
	}
	return JobSearchResponse{Jobs: jobs, Total: len(jobs)}
}

func FromApplicantsSlice(s state.ApplicantsSlice) ApplicantListResponse {
	return ApplicantListResponse{
		Applicants:      s.Applicants,
		TotalApplicants: s.TotalApplicants,
		NewApplicants:   s.NewApplicants,
		Error:           s.Error,
	}
}

func FromTemplatesSlice(s state.TemplatesSlice) EmailTemplateListResponse {
	return EmailTemplateListResponse{
		Templates:      s.Templates,
		TotalTemplates: len(s.Templates),
		Defaults:       recruiter.DefaultsByCategory(s.Templates),
		Error:          s.Error,
	}
}

func FromRenderedEmail(r usecase.RenderedEmail) RenderedEmailResponse {
	return RenderedEmailResponse{Subject: r.Subject, Body: r.Body}
}

func FromInterviewsSlice(s state.InterviewsSlice) InterviewListResponse {
	return InterviewListResponse{
		Interviews: s.Interviews,
		Total:      len(s.Interviews),
		Scheduled:  recruiter.CountInterviewsByStatus(s.Interviews, recruiter.InterviewScheduled),
		Completed:  recruiter.CountInterviewsByStatus(s.Interviews, recruiter.InterviewCompleted),
		Cancelled:  recruiter.CountInterviewsByStatus(s.Interviews, recruiter.InterviewCancelled),
		Error:      s.Error,
	}
}
