package recruiter

import "errors"

var (
	ErrEmptyTitle             = errors.New("title cannot be empty")
	ErrEmptyCompany           = errors.New("company cannot be empty")
	ErrInvalidJobType         = errors.New("invalid job type")
	ErrInvalidJobStatus       = errors.New("invalid job status")
	ErrEmptyName              = errors.New("name cannot be empty")
	ErrEmptyEmail             = errors.New("email cannot be empty")
	ErrNegativeExperience     = errors.New("experience cannot be negative")
	ErrInvalidApplicantStatus = errors.New("invalid applicant status")
	ErrEmptySubject           = errors.New("subject cannot be empty")
	ErrInvalidCategory        = errors.New("invalid template category")
	ErrInvalidDuration        = errors.New("duration must be positive")
	ErrInvalidInterviewStatus = errors.New("invalid interview status")
	ErrMissingDate            = errors.New("date is required")
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeTemporary  JobType = "Temporary"
	JobTypeInternship JobType = "Internship"
	JobTypeRemote     JobType = "Remote"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeTemporary, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusDraft, JobStatusActive, JobStatusPaused, JobStatusClosed:
		return true
	}
	return false
}

type ApplicantStatus string

const (
	ApplicantStatusNew       ApplicantStatus = "new"
	ApplicantStatusReview    ApplicantStatus = "review"
	ApplicantStatusInterview ApplicantStatus = "interview"
	ApplicantStatusOffer     ApplicantStatus = "offer"
	ApplicantStatusRejected  ApplicantStatus = "rejected"
	ApplicantStatusHired     ApplicantStatus = "hired"
)

func (s ApplicantStatus) IsValid() bool {
	switch s {
	case ApplicantStatusNew, ApplicantStatusReview, ApplicantStatusInterview,
		ApplicantStatusOffer, ApplicantStatusRejected, ApplicantStatusHired:
		return true
	}
	return false
}

type TemplateCategory string

const (
	CategoryApplication TemplateCategory = "application"
	CategoryInterview   TemplateCategory = "interview"
	CategoryOffer       TemplateCategory = "offer"
	CategoryRejection   TemplateCategory = "rejection"
	CategoryFollowUp    TemplateCategory = "follow-up"
)

func (c TemplateCategory) IsValid() bool {
	switch c {
	case CategoryApplication, CategoryInterview, CategoryOffer, CategoryRejection, CategoryFollowUp:
		return true
	}
	return false
}

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

func (s InterviewStatus) IsValid() bool {
	return s == InterviewScheduled || s == InterviewCompleted || s == InterviewCancelled
}
