package usecase

import (
	"context"
	"time"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/domain/recruiter"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]notification.Notification, error)
	Prepend(ctx context.Context, n notification.Notification) error
	MarkRead(ctx context.Context, id string) (bool, error)
	MarkAllRead(ctx context.Context) (int, error)
}

type PreferencesRepository interface {
	Load(ctx context.Context) (notification.Preferences, bool, error)
	Save(ctx context.Context, prefs notification.Preferences) error
}

// Deliverer hands a stored notification to its delivery methods without waiting.
type Deliverer interface {
	Dispatch(n notification.Notification)
}

type JobRepository interface {
	List(ctx context.Context) ([]recruiter.Job, error)
	Get(ctx context.Context, id string) (recruiter.Job, error)
	Create(ctx context.Context, j recruiter.Job) error
	Update(ctx context.Context, id string, fn func(*recruiter.Job) error) (recruiter.Job, error)
	Delete(ctx context.Context, id string) (recruiter.Job, error)
	AdjustApplicants(ctx context.Context, jobID string, delta int) (recruiter.Job, error)
	IncrementViews(ctx context.Context, jobID string) (recruiter.Job, error)
}

type ApplicantRepository interface {
	List(ctx context.Context) ([]recruiter.Applicant, error)
	Get(ctx context.Context, id string) (recruiter.Applicant, error)
	Create(ctx context.Context, a recruiter.Applicant) error
	Update(ctx context.Context, id string, fn func(*recruiter.Applicant) error) (recruiter.Applicant, error)
	Delete(ctx context.Context, id string) (recruiter.Applicant, error)
}

type EmailTemplateRepository interface {
	List(ctx context.Context) ([]recruiter.EmailTemplate, error)
	Get(ctx context.Context, id string) (recruiter.EmailTemplate, error)
	Create(ctx context.Context, t recruiter.EmailTemplate, now time.Time) error
	Edit(ctx context.Context, id string, now time.Time, fn func(recruiter.EmailTemplate) (recruiter.EmailTemplate, error)) (recruiter.EmailTemplate, error)
	Remove(ctx context.Context, id string, guard func(recruiter.EmailTemplate) error) (recruiter.EmailTemplate, error)
}

type InterviewRepository interface {
	List(ctx context.Context) ([]recruiter.Interview, error)
	Get(ctx context.Context, id string) (recruiter.Interview, error)
	Create(ctx context.Context, iv recruiter.Interview) error
	Update(ctx context.Context, id string, fn func(*recruiter.Interview) error) (recruiter.Interview, error)
	Delete(ctx context.Context, id string) (recruiter.Interview, error)
}
