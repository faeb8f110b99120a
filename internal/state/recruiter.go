package state

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/pkg/errs"
	"careerlaunch/internal/usecase"
)

const (
	errLoadJobs       = "Failed to load jobs"
	errLoadApplicants = "Failed to load applicants"
	errLoadTemplates  = "Failed to load email templates"
	errLoadInterviews = "Failed to load interviews"
)

type JobsSlice struct {
	Jobs       []recruiter.Job
	TotalJobs  int
	ActiveJobs int
	IsLoading  bool
	Error      string
}

type ApplicantsSlice struct {
	Applicants      []recruiter.Applicant
	TotalApplicants int
	NewApplicants   int
	IsLoading       bool
	Error           string
}

type TemplatesSlice struct {
	Templates []recruiter.EmailTemplate
	IsLoading bool
	Error     string
}

type InterviewsSlice struct {
	Interviews []recruiter.Interview
	IsLoading  bool
	Error      string
}

type MetricsSlice struct {
	Metrics   *recruiter.DashboardMetrics
	IsLoading bool
}

type RecruiterSnapshot struct {
	Jobs       JobsSlice
	Applicants ApplicantsSlice
	Templates  TemplatesSlice
	Interviews InterviewsSlice
	Metrics    MetricsSlice
}

// StatusNotifier is satisfied by *Notifications; sends go through its preference gate.
type StatusNotifier interface {
	SendNotification(ctx context.Context, t notification.Type, data notification.Payload) (notification.Notification, error)
}

type Recruiter struct {
	jobs       usecase.JobUseCase
	applicants usecase.ApplicantUseCase
	templates  usecase.EmailTemplateUseCase
	interviews usecase.InterviewUseCase
	metrics    usecase.MetricsUseCase
	notifier   StatusNotifier
	notify     bool
	logger     *slog.Logger

	mu    sync.RWMutex
	state RecruiterSnapshot
	subs  subscribers[RecruiterSnapshot]
}

type RecruiterDeps struct {
	Jobs       usecase.JobUseCase
	Applicants usecase.ApplicantUseCase
	Templates  usecase.EmailTemplateUseCase
	Interviews usecase.InterviewUseCase
	Metrics    usecase.MetricsUseCase
	Notifier   StatusNotifier
}

func NewRecruiter(deps RecruiterDeps, cfg config.Config, logger *slog.Logger) *Recruiter {
	return &Recruiter{
		jobs:       deps.Jobs,
		applicants: deps.Applicants,
		templates:  deps.Templates,
		interviews: deps.Interviews,
		metrics:    deps.Metrics,
		notifier:   deps.Notifier,
		notify:     cfg.Notify.StatusNotifications && deps.Notifier != nil,
		logger:     logger,
		state: RecruiterSnapshot{
			Jobs:       JobsSlice{Jobs: []recruiter.Job{}},
			Applicants: ApplicantsSlice{Applicants: []recruiter.Applicant{}},
			Templates:  TemplatesSlice{Templates: []recruiter.EmailTemplate{}},
			Interviews: InterviewsSlice{Interviews: []recruiter.Interview{}},
		},
	}
}

func (r *Recruiter) Snapshot() RecruiterSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.clone()
}

func (r *Recruiter) Subscribe(fn func(RecruiterSnapshot)) (unsubscribe func()) {
	return r.subs.add(fn)
}

// Init loads every slice once. The first failure is returned after all fetches ran.
func (r *Recruiter) Init(ctx context.Context) error {
	return errs.Join(
		r.FetchJobs(ctx),
		r.FetchApplicants(ctx),
		r.FetchEmailTemplates(ctx),
		r.FetchInterviews(ctx),
		r.FetchDashboardMetrics(ctx),
	)
}

// Jobs

func (r *Recruiter) FetchJobs(ctx context.Context) error {
	r.update(func(st *RecruiterSnapshot) {
		st.Jobs.IsLoading = true
		st.Jobs.Error = ""
	})

	list, err := r.jobs.GetJobs(ctx)
	if err != nil {
		r.logger.Error(errLoadJobs, slog.String("error", err.Error()))
		r.update(func(st *RecruiterSnapshot) {
			st.Jobs.IsLoading = false
			st.Jobs.Error = errLoadJobs
		})
		return err
	}

	r.update(func(st *RecruiterSnapshot) {
		st.Jobs = JobsSlice{Jobs: list.Jobs, TotalJobs: list.TotalJobs, ActiveJobs: list.ActiveJobs}
	})
	return nil
}

func (r *Recruiter) CreateJob(ctx context.Context, draft recruiter.JobDraft) (recruiter.Job, error) {
	job, err := r.jobs.CreateJob(ctx, draft)
	if err != nil {
		return recruiter.Job{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Jobs.Jobs = append([]recruiter.Job{job}, st.Jobs.Jobs...)
		st.Jobs.recount()
	})
	return job, nil
}

func (r *Recruiter) UpdateJob(ctx context.Context, id string, p recruiter.JobPatch) (recruiter.Job, error) {
	job, err := r.jobs.UpdateJob(ctx, id, p)
	if err != nil {
		return recruiter.Job{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Jobs.Jobs = replaceByID(st.Jobs.Jobs, job, func(j recruiter.Job) string { return j.ID })
		st.Jobs.recount()
	})
	return job, nil
}

func (r *Recruiter) DeleteJob(ctx context.Context, id string) error {
	if err := r.jobs.DeleteJob(ctx, id); err != nil {
		return err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Jobs.Jobs = removeByID(st.Jobs.Jobs, id, func(j recruiter.Job) string { return j.ID })
		st.Jobs.recount()
	})
	return nil
}

func (r *Recruiter) RecordJobView(ctx context.Context, id string) (recruiter.Job, error) {
	job, err := r.jobs.RecordJobView(ctx, id)
	if err != nil {
		return recruiter.Job{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Jobs.Jobs = replaceByID(st.Jobs.Jobs, job, func(j recruiter.Job) string { return j.ID })
	})
	return job, nil
}

func (r *Recruiter) SearchJobs(ctx context.Context, query string, filter recruiter.JobFilter) ([]recruiter.Job, error) {
	return r.jobs.SearchJobs(ctx, query, filter)
}

func (s *JobsSlice) recount() {
	s.TotalJobs = len(s.Jobs)
	s.ActiveJobs = recruiter.CountActiveJobs(s.Jobs)
}

// Applicants

func (r *Recruiter) FetchApplicants(ctx context.Context) error {
	r.update(func(st *RecruiterSnapshot) {
		st.Applicants.IsLoading = true
		st.Applicants.Error = ""
	})

	list, err := r.applicants.GetApplicants(ctx)
	if err != nil {
		r.logger.Error(errLoadApplicants, slog.String("error", err.Error()))
		r.update(func(st *RecruiterSnapshot) {
			st.Applicants.IsLoading = false
			st.Applicants.Error = errLoadApplicants
		})
		return err
	}

	r.update(func(st *RecruiterSnapshot) {
		st.Applicants = ApplicantsSlice{
			Applicants:      list.Applicants,
			TotalApplicants: list.TotalApplicants,
			NewApplicants:   list.NewApplicants,
		}
	})
	return nil
}

func (r *Recruiter) CreateApplicant(ctx context.Context, draft recruiter.ApplicantDraft) (recruiter.Applicant, error) {
	a, err := r.applicants.CreateApplicant(ctx, draft)
	if err != nil {
		return recruiter.Applicant{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Applicants.Applicants = append([]recruiter.Applicant{a}, st.Applicants.Applicants...)
		st.Applicants.recount()
		st.Jobs.adjustApplicants(a.JobID, 1)
	})
	return a, nil
}

// UpdateApplicantStatus replaces the cached record and, when enabled, tells
// the candidate about the move through the notification container.
func (r *Recruiter) UpdateApplicantStatus(
	ctx context.Context,
	id string,
	status recruiter.ApplicantStatus,
) (recruiter.Applicant, error) {
	a, err := r.applicants.UpdateApplicantStatus(ctx, id, status)
	if err != nil {
		return recruiter.Applicant{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Applicants.Applicants = replaceByID(st.Applicants.Applicants, a, applicantID)
		st.Applicants.recount()
	})

	r.notifyStatusChange(ctx, a)
	return a, nil
}

func (r *Recruiter) UpdateApplicant(ctx context.Context, id string, p recruiter.ApplicantPatch) (recruiter.Applicant, error) {
	a, err := r.applicants.UpdateApplicant(ctx, id, p)
	if err != nil {
		return recruiter.Applicant{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Applicants.Applicants = replaceByID(st.Applicants.Applicants, a, applicantID)
	})
	return a, nil
}

func (r *Recruiter) DeleteApplicant(ctx context.Context, id string) error {
	if err := r.applicants.DeleteApplicant(ctx, id); err != nil {
		return err
	}
	r.update(func(st *RecruiterSnapshot) {
		if i := slices.IndexFunc(st.Applicants.Applicants, func(a recruiter.Applicant) bool { return a.ID == id }); i >= 0 {
			st.Jobs.adjustApplicants(st.Applicants.Applicants[i].JobID, -1)
		}
		st.Applicants.Applicants = removeByID(st.Applicants.Applicants, id, applicantID)
		st.Applicants.recount()
	})
	return nil
}

func applicantID(a recruiter.Applicant) string { return a.ID }

func (s *ApplicantsSlice) recount() {
	s.TotalApplicants = len(s.Applicants)
	s.NewApplicants = recruiter.CountApplicantsByStatus(s.Applicants, recruiter.ApplicantStatusNew)
}

func (s *JobsSlice) adjustApplicants(jobID string, delta int) {
	for i := range s.Jobs {
		if s.Jobs[i].ID == jobID {
			s.Jobs[i].Applicants = max(s.Jobs[i].Applicants+delta, 0)
		}
	}
}

func (r *Recruiter) notifyStatusChange(ctx context.Context, a recruiter.Applicant) {
	if !r.notify {
		return
	}

	r.mu.RLock()
	i := slices.IndexFunc(r.state.Jobs.Jobs, func(j recruiter.Job) bool { return j.ID == a.JobID })
	var job recruiter.Job
	if i >= 0 {
		job = r.state.Jobs.Jobs[i]
	}
	r.mu.RUnlock()
	if i < 0 {
		r.logger.Warn("Skipping status notification: job not loaded", slog.String("applicantId", a.ID), slog.String("jobId", a.JobID))
		return
	}

	var (
		t    notification.Type
		data notification.Payload
	)
	switch a.Status {
	case recruiter.ApplicantStatusReview:
		t = notification.TypeApplicationReview
		data = notification.ApplicationData{UserName: a.Name, JobTitle: job.Title, Company: job.Company, ApplicationID: a.ID}
	case recruiter.ApplicantStatusInterview:
		t = notification.TypeInterviewInvitation
		data = notification.InterviewData{UserName: a.Name, JobTitle: job.Title, Company: job.Company}
	case recruiter.ApplicantStatusRejected:
		t = notification.TypeApplicationRejection
		data = notification.RejectionData{UserName: a.Name, JobTitle: job.Title, Company: job.Company}
	default:
		return
	}

	if _, err := r.notifier.SendNotification(ctx, t, data); err != nil {
		level := slog.LevelError
		if errs.Is(err, ErrNotificationDisabled) {
			level = slog.LevelDebug
		}
		r.logger.Log(ctx, level, "Status notification not sent",
			slog.String("applicantId", a.ID),
			slog.String("type", string(t)),
			slog.String("error", err.Error()),
		)
	}
}

// Email templates

func (r *Recruiter) FetchEmailTemplates(ctx context.Context) error {
	r.update(func(st *RecruiterSnapshot) {
		st.Templates.IsLoading = true
		st.Templates.Error = ""
	})

	list, err := r.templates.GetEmailTemplates(ctx)
	if err != nil {
		r.logger.Error(errLoadTemplates, slog.String("error", err.Error()))
		r.update(func(st *RecruiterSnapshot) {
			st.Templates.IsLoading = false
			st.Templates.Error = errLoadTemplates
		})
		return err
	}

	r.update(func(st *RecruiterSnapshot) {
		st.Templates = TemplatesSlice{Templates: list.Templates}
	})
	return nil
}

func (r *Recruiter) CreateEmailTemplate(ctx context.Context, draft recruiter.EmailTemplateDraft) (recruiter.EmailTemplate, error) {
	t, err := r.templates.CreateEmailTemplate(ctx, draft)
	if err != nil {
		return recruiter.EmailTemplate{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Templates.Templates = append([]recruiter.EmailTemplate{t}, st.Templates.Templates...)
		recruiter.EnforceSingleDefault(st.Templates.Templates, t, t.LastUpdated)
	})
	return t, nil
}

func (r *Recruiter) UpdateEmailTemplate(
	ctx context.Context,
	id string,
	p recruiter.EmailTemplatePatch,
) (recruiter.EmailTemplate, error) {
	t, err := r.templates.UpdateEmailTemplate(ctx, id, p)
	if err != nil {
		return recruiter.EmailTemplate{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Templates.Templates = replaceByID(st.Templates.Templates, t, templateID)
		recruiter.EnforceSingleDefault(st.Templates.Templates, t, t.LastUpdated)
	})
	return t, nil
}

func (r *Recruiter) DeleteEmailTemplate(ctx context.Context, id string) error {
	if err := r.templates.DeleteEmailTemplate(ctx, id); err != nil {
		return err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Templates.Templates = removeByID(st.Templates.Templates, id, templateID)
	})
	return nil
}

func (r *Recruiter) RenderEmailTemplate(ctx context.Context, id string, vars map[string]string) (usecase.RenderedEmail, error) {
	return r.templates.RenderEmailTemplate(ctx, id, vars)
}

func templateID(t recruiter.EmailTemplate) string { return t.ID }

// Interviews

func (r *Recruiter) FetchInterviews(ctx context.Context) error {
	r.update(func(st *RecruiterSnapshot) {
		st.Interviews.IsLoading = true
		st.Interviews.Error = ""
	})

	list, err := r.interviews.GetInterviews(ctx)
	if err != nil {
		r.logger.Error(errLoadInterviews, slog.String("error", err.Error()))
		r.update(func(st *RecruiterSnapshot) {
			st.Interviews.IsLoading = false
			st.Interviews.Error = errLoadInterviews
		})
		return err
	}

	r.update(func(st *RecruiterSnapshot) {
		st.Interviews = InterviewsSlice{Interviews: list.Interviews}
	})
	return nil
}

func (r *Recruiter) ScheduleInterview(ctx context.Context, draft recruiter.InterviewDraft) (recruiter.Interview, error) {
	iv, err := r.interviews.ScheduleInterview(ctx, draft)
	if err != nil {
		return recruiter.Interview{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Interviews.Interviews = append([]recruiter.Interview{iv}, st.Interviews.Interviews...)
	})
	return iv, nil
}

func (r *Recruiter) UpdateInterview(ctx context.Context, id string, p recruiter.InterviewPatch) (recruiter.Interview, error) {
	return r.replaceInterview(r.interviews.UpdateInterview(ctx, id, p))
}

func (r *Recruiter) CompleteInterview(ctx context.Context, id, feedback string) (recruiter.Interview, error) {
	return r.replaceInterview(r.interviews.CompleteInterview(ctx, id, feedback))
}

func (r *Recruiter) CancelInterview(ctx context.Context, id string) (recruiter.Interview, error) {
	return r.replaceInterview(r.interviews.CancelInterview(ctx, id))
}

func (r *Recruiter) DeleteInterview(ctx context.Context, id string) error {
	if err := r.interviews.DeleteInterview(ctx, id); err != nil {
		return err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Interviews.Interviews = removeByID(st.Interviews.Interviews, id, interviewID)
	})
	return nil
}

func (r *Recruiter) replaceInterview(iv recruiter.Interview, err error) (recruiter.Interview, error) {
	if err != nil {
		return recruiter.Interview{}, err
	}
	r.update(func(st *RecruiterSnapshot) {
		st.Interviews.Interviews = replaceByID(st.Interviews.Interviews, iv, interviewID)
	})
	return iv, nil
}

func interviewID(iv recruiter.Interview) string { return iv.ID }

// Dashboard

func (r *Recruiter) FetchDashboardMetrics(ctx context.Context) error {
	r.update(func(st *RecruiterSnapshot) { st.Metrics.IsLoading = true })

	m, err := r.metrics.GetDashboardMetrics(ctx)
	if err != nil {
		r.logger.Error("Failed to load dashboard metrics", slog.String("error", err.Error()))
		r.update(func(st *RecruiterSnapshot) { st.Metrics.IsLoading = false })
		return err
	}

	r.update(func(st *RecruiterSnapshot) { st.Metrics = MetricsSlice{Metrics: &m} })
	return nil
}

// StartMetricsPolling refreshes the dashboard metrics every interval until
// stop is called or ctx ends. stop waits for the loop to exit.
func (r *Recruiter) StartMetricsPolling(ctx context.Context, interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.FetchDashboardMetrics(ctx); err != nil && ctx.Err() == nil {
					r.logger.Warn("Metrics poll failed", slog.String("error", err.Error()))
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

func (r *Recruiter) update(fn func(*RecruiterSnapshot)) {
	r.mu.Lock()
	fn(&r.state)
	snap := r.state.clone()
	r.mu.Unlock()

	r.subs.publish(snap)
}

func (st RecruiterSnapshot) clone() RecruiterSnapshot {
	out := st
	out.Jobs.Jobs = cloneEach(st.Jobs.Jobs, recruiter.Job.Clone)
	out.Applicants.Applicants = cloneEach(st.Applicants.Applicants, recruiter.Applicant.Clone)
	out.Templates.Templates = slices.Clone(st.Templates.Templates)
	out.Interviews.Interviews = cloneEach(st.Interviews.Interviews, recruiter.Interview.Clone)
	if st.Metrics.Metrics != nil {
		m := st.Metrics.Metrics.Clone()
		out.Metrics.Metrics = &m
	}
	return out
}

// cloneEach copies items and everything they reference; nil stays nil.
func cloneEach[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, v := range items {
		out[i] = clone(v)
	}
	return out
}

func replaceByID[T any](items []T, item T, idOf func(T) string) []T {
	id := idOf(item)
	for i := range items {
		if idOf(items[i]) == id {
			items[i] = item
		}
	}
	return items
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	return slices.DeleteFunc(items, func(v T) bool { return idOf(v) == id })
}
