//go:build unit

package usecase_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/infra/kvstore"
	"careerlaunch/internal/infra/repository"
	"careerlaunch/internal/infra/seed"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/errs"
	"careerlaunch/internal/pkg/latency"
	"careerlaunch/internal/pkg/ptr"
	"careerlaunch/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recruiterFixture struct {
	jobs       usecase.JobUseCase
	applicants usecase.ApplicantUseCase
	templates  usecase.EmailTemplateUseCase
	interviews usecase.InterviewUseCase
	metrics    usecase.MetricsUseCase
}

func newRecruiterFixture(t *testing.T, seeded bool) recruiterFixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	jobRepo := repository.NewJobRepository(store, discard)
	applicantRepo := repository.NewApplicantRepository(store, discard)
	templateRepo := repository.NewEmailTemplateRepository(store, discard)
	interviewRepo := repository.NewInterviewRepository(store, discard)

	if seeded {
		_, err := seed.NewSeeder(jobRepo, applicantRepo, templateRepo, interviewRepo, discard).SeedIfAbsent(context.Background())
		require.NoError(t, err)
	}

	clk := clock.NewMockClock(fixedNow)
	sim := latency.None()
	return recruiterFixture{
		jobs:       usecase.NewJobUseCase(jobRepo, sim, clk, discard),
		applicants: usecase.NewApplicantUseCase(applicantRepo, jobRepo, sim, clk, discard),
		templates:  usecase.NewEmailTemplateUseCase(templateRepo, sim, clk, discard),
		interviews: usecase.NewInterviewUseCase(interviewRepo, applicantRepo, jobRepo, sim, discard),
		metrics:    usecase.NewMetricsUseCase(jobRepo, applicantRepo, sim, clk),
	}
}


func TestJobUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("created job appears once with generated fields", func(t *testing.T) {
		f := newRecruiterFixture(t, false)

		created, err := f.jobs.CreateJob(ctx, recruiter.JobDraft{Title: "Go Developer", Company: "Acme", Status: recruiter.JobStatusActive})
		require.NoError(t, err)

		list, err := f.jobs.GetJobs(ctx)
		require.NoError(t, err)

		matching := 0
		for _, j := range list.Jobs {
			if j.ID == created.ID {
				matching++
			}
		}
		assert.Equal(t, 1, matching)
		assert.True(t, strings.HasPrefix(created.ID, "job-"))
		assert.Equal(t, fixedNow, created.PostedDate)
		assert.Zero(t, created.Applicants)
		assert.Zero(t, created.Views)
		assert.Equal(t, 1, list.ActiveJobs)
	})

	t.Run("update of missing job is not found and leaves the list unchanged", func(t *testing.T) {
		f := newRecruiterFixture(t, true)
		before, err := f.jobs.GetJobs(ctx)
		require.NoError(t, err)

		_, err = f.jobs.UpdateJob(ctx, "job-missing", recruiter.JobPatch{Title: ptr.Of("x")})
		require.Error(t, err)
		assert.True(t, errs.Is(err, usecase.ErrJobNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))

		after, err := f.jobs.GetJobs(ctx)
		require.NoError(t, err)
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("jobs changed (-before +after):\n%s", diff)
		}
	})

	t.Run("invalid patch is a validation error", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		_, err := f.jobs.UpdateJob(ctx, "job-1", recruiter.JobPatch{Status: ptr.Of(recruiter.JobStatus("archived"))})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("delete removes exactly one and active count drops", func(t *testing.T) {
		f := newRecruiterFixture(t, true)
		before, err := f.jobs.GetJobs(ctx)
		require.NoError(t, err)

		require.NoError(t, f.jobs.DeleteJob(ctx, "job-1"))

		after, err := f.jobs.GetJobs(ctx)
		require.NoError(t, err)
		assert.Equal(t, before.TotalJobs-1, after.TotalJobs)
		assert.Equal(t, before.ActiveJobs-1, after.ActiveJobs)

		err = f.jobs.DeleteJob(ctx, "job-1")
		assert.True(t, errs.Is(err, usecase.ErrJobNotFound))
	})

	t.Run("views and search", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		job, err := f.jobs.RecordJobView(ctx, "job-2")
		require.NoError(t, err)
		assert.Equal(t, 423, job.Views)

		found, err := f.jobs.SearchJobs(ctx, "manager", recruiter.JobFilter{})
		require.NoError(t, err)
		assert.Empty(t, found, "draft jobs are not searchable")

		found, err = f.jobs.SearchJobs(ctx, "", recruiter.JobFilter{Industry: "Technology"})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("concurrent creates are all kept", func(t *testing.T) {
		f := newRecruiterFixture(t, false)

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.jobs.CreateJob(ctx, recruiter.JobDraft{Title: "T", Company: "C"})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		list, err := f.jobs.GetJobs(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, list.TotalJobs)
	})
}

func TestApplicantUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("create and delete maintain the job counter", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		a, err := f.applicants.CreateApplicant(ctx, recruiter.ApplicantDraft{JobID: "job-5", Name: "Ann", Email: "ann@example.com"})
		require.NoError(t, err)
		assert.Equal(t, recruiter.ApplicantStatusNew, a.Status)
		assert.Equal(t, 1, jobApplicants(t, f, "job-5"))

		require.NoError(t, f.applicants.DeleteApplicant(ctx, a.ID))
		assert.Equal(t, 0, jobApplicants(t, f, "job-5"))
	})

	t.Run("applying to a missing job fails", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		_, err := f.applicants.CreateApplicant(ctx, recruiter.ApplicantDraft{JobID: "nope", Name: "Ann", Email: "a@b"})
		assert.True(t, errs.Is(err, usecase.ErrJobNotFound))
	})

	t.Run("status update sets last contact date", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		a, err := f.applicants.UpdateApplicantStatus(ctx, "app-3", recruiter.ApplicantStatusReview)
		require.NoError(t, err)
		require.NotNil(t, a.LastContactDate)
		assert.Equal(t, fixedNow, *a.LastContactDate)

		list, err := f.applicants.GetApplicants(ctx)
		require.NoError(t, err)
		assert.Zero(t, list.NewApplicants)
	})

	t.Run("status update of missing applicant", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		_, err := f.applicants.UpdateApplicantStatus(ctx, "app-x", recruiter.ApplicantStatusReview)
		assert.True(t, errs.Is(err, usecase.ErrApplicantNotFound))
	})
}

func jobApplicants(t *testing.T, f recruiterFixture, id string) int {
	t.Helper()
	list, err := f.jobs.GetJobs(context.Background())
	require.NoError(t, err)
	for _, j := range list.Jobs {
		if j.ID == id {
			return j.Applicants
		}
	}
	t.Fatalf("job %s not found", id)
	return 0
}

func TestEmailTemplateUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("new default demotes the previous default of its category", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		created, err := f.templates.CreateEmailTemplate(ctx, recruiter.EmailTemplateDraft{
			Name: "Short invite", Subject: "Interview", Category: recruiter.CategoryInterview, IsDefault: true,
		})
		require.NoError(t, err)

		list, err := f.templates.GetEmailTemplates(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, list.TotalTemplates)
		assert.Equal(t, created.ID, list.Defaults[recruiter.CategoryInterview])
		assert.Equal(t, "template-1", list.Defaults[recruiter.CategoryApplication])
	})

	t.Run("default templates cannot be deleted", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		err := f.templates.DeleteEmailTemplate(ctx, "template-1")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("demoted template can then be deleted", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		_, err := f.templates.UpdateEmailTemplate(ctx, "template-3", recruiter.EmailTemplatePatch{IsDefault: ptr.Of(false)})
		require.NoError(t, err)
		require.NoError(t, f.templates.DeleteEmailTemplate(ctx, "template-3"))

		err = f.templates.DeleteEmailTemplate(ctx, "template-3")
		assert.True(t, errs.Is(err, usecase.ErrEmailTemplateNotFound))
	})

	t.Run("render", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		out, err := f.templates.RenderEmailTemplate(ctx, "template-2", map[string]string{"position": "Data Scientist"})
		require.NoError(t, err)
		assert.Equal(t, "Invitation to Interview for Data Scientist", out.Subject)
	})
}

func TestInterviewUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("schedule copies names and counts by status", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		iv, err := f.interviews.ScheduleInterview(ctx, recruiter.InterviewDraft{ApplicantID: "app-1", Date: fixedNow, Duration: 45})
		require.NoError(t, err)
		assert.Equal(t, "John Smith", iv.ApplicantName)
		assert.Equal(t, "Senior Frontend Developer", iv.JobTitle)
		assert.Equal(t, "job-1", iv.JobID)

		list, err := f.interviews.GetInterviews(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, list.Total)
		assert.Equal(t, 2, list.Scheduled)
		assert.Equal(t, 1, list.Completed)
	})

	t.Run("complete and cancel transitions", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		iv, err := f.interviews.CompleteInterview(ctx, "interview-1", "Solid")
		require.NoError(t, err)
		assert.Equal(t, recruiter.InterviewCompleted, iv.Status)

		_, err = f.interviews.CancelInterview(ctx, "interview-1")
		assert.True(t, errs.Is(err, errs.ErrConflict))

		_, err = f.interviews.CancelInterview(ctx, "interview-x")
		assert.True(t, errs.Is(err, usecase.ErrInterviewNotFound))
	})
}

func TestMetricsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("seeded dataset", func(t *testing.T) {
		f := newRecruiterFixture(t, true)

		m, err := f.metrics.GetDashboardMetrics(ctx)
		require.NoError(t, err)

		assert.Equal(t, 5, m.TotalJobs)
		assert.Equal(t, 4, m.ActiveJobs)
		assert.Equal(t, 5, m.TotalApplicants)
		assert.Equal(t, 1, m.NewApplicants)
		assert.Equal(t, "40.0%", m.ConversionRate)
		require.Len(t, m.TopJobListings, 3)
		assert.Equal(t, "job-2", m.TopJobListings[0].ID)
	})

	t.Run("empty store", func(t *testing.T) {
		f := newRecruiterFixture(t, false)

		m, err := f.metrics.GetDashboardMetrics(ctx)
		require.NoError(t, err)
		assert.Equal(t, "0%", m.ConversionRate)
		assert.Empty(t, m.TopJobListings)
	})
}
