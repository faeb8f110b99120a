//go:build unit

package api_test

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/handler/api"
	resdto "careerlaunch/internal/handler/dto/response"
	"careerlaunch/internal/infra/kvstore"
	"careerlaunch/internal/infra/repository"
	"careerlaunch/internal/infra/seed"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/pkg/latency"
	"careerlaunch/internal/state"
	"careerlaunch/internal/usecase"
	"careerlaunch/tests/common/builder"
	"careerlaunch/tests/common/httptest"
	"careerlaunch/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)

type sentStatus struct {
	t    notification.Type
	data notification.Payload
}

type statusRecorder struct{ sent []sentStatus }

func (r *statusRecorder) SendNotification(
	_ context.Context,
	t notification.Type,
	data notification.Payload,
) (notification.Notification, error) {
	r.sent = append(r.sent, sentStatus{t: t, data: data})
	return notification.Notification{Type: t}, nil
}

// RecruiterHandlerTestSuite drives the handlers over the real use cases and an
// in-memory store seeded with the sample data.
type RecruiterHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	recruiter *state.Recruiter
	notifier  *statusRecorder
}

func (s *RecruiterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	store := kvstore.NewMemoryStore()
	jobRepo := repository.NewJobRepository(store, discard)
	applicantRepo := repository.NewApplicantRepository(store, discard)
	templateRepo := repository.NewEmailTemplateRepository(store, discard)
	interviewRepo := repository.NewInterviewRepository(store, discard)
	_, err := seed.NewSeeder(jobRepo, applicantRepo, templateRepo, interviewRepo, discard).SeedIfAbsent(context.Background())
	s.Require().NoError(err)

	clk := clock.NewMockClock(fixedNow)
	sim := latency.None()
	s.notifier = &statusRecorder{}
	s.recruiter = state.NewRecruiter(state.RecruiterDeps{
		Jobs:       usecase.NewJobUseCase(jobRepo, sim, clk, discard),
		Applicants: usecase.NewApplicantUseCase(applicantRepo, jobRepo, sim, clk, discard),
		Templates:  usecase.NewEmailTemplateUseCase(templateRepo, sim, clk, discard),
		Interviews: usecase.NewInterviewUseCase(interviewRepo, applicantRepo, jobRepo, sim, discard),
		Metrics:    usecase.NewMetricsUseCase(jobRepo, applicantRepo, sim, clk),
		Notifier:   s.notifier,
	}, config.NewTestConfig(), discard)

	jobs := api.NewJobHandler(s.recruiter)
	applicants := api.NewApplicantHandler(s.recruiter, clk)
	templates := api.NewEmailTemplateHandler(s.recruiter)
	interviews := api.NewInterviewHandler(s.recruiter)
	dashboard := api.NewDashboardHandler(s.recruiter)

	s.router.GET("/api/jobs", jobs.List)
	s.router.POST("/api/jobs", jobs.Create)
	s.router.GET("/api/jobs/search", jobs.Search)
	s.router.PATCH("/api/jobs/:id", jobs.Update)
	s.router.DELETE("/api/jobs/:id", jobs.Delete)
	s.router.POST("/api/jobs/:id/views", jobs.RecordView)

	s.router.GET("/api/applicants", applicants.List)
	s.router.POST("/api/applicants", applicants.Create)
	s.router.GET("/api/applicants/export", applicants.Export)
	s.router.PATCH("/api/applicants/:id", applicants.Update)
	s.router.PATCH("/api/applicants/:id/status", applicants.UpdateStatus)
	s.router.DELETE("/api/applicants/:id", applicants.Delete)

	s.router.GET("/api/email-templates", templates.List)
	s.router.POST("/api/email-templates", templates.Create)
	s.router.PATCH("/api/email-templates/:id", templates.Update)
	s.router.DELETE("/api/email-templates/:id", templates.Delete)
	s.router.POST("/api/email-templates/:id/render", templates.Render)

	s.router.GET("/api/interviews", interviews.List)
	s.router.POST("/api/interviews", interviews.Schedule)
	s.router.PATCH("/api/interviews/:id", interviews.Update)
	s.router.DELETE("/api/interviews/:id", interviews.Delete)
	s.router.POST("/api/interviews/:id/complete", interviews.Complete)
	s.router.POST("/api/interviews/:id/cancel", interviews.Cancel)

	s.router.GET("/api/dashboard/metrics", dashboard.Metrics)
}

func TestRecruiterHandlerSuite(t *testing.T) {
	suite.Run(t, new(RecruiterHandlerTestSuite))
}

type testCaseRecruiter struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// Jobs
// ================================================================================

func (s *RecruiterHandlerTestSuite) TestJobs() {
	url := "/api/jobs"
	reqBody := builder.NewJobBuilder().BuildCreateRequestDTO()

	s.Run("success: list returns counters", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.JobListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(5, body.TotalJobs)
		s.Equal(4, body.ActiveJobs)
	})

	s.Run("success: create returns 201 and bumps active jobs", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var job recruiter.Job
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &job)
		s.True(strings.HasPrefix(job.ID, "job-"))
		s.Zero(job.Applicants)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/jobs/" + job.ID})

		snap := s.recruiter.Snapshot().Jobs
		s.Equal(job.ID, snap.Jobs[0].ID)
		s.Equal(5, snap.ActiveJobs)
	})

	s.Run("success: draft job leaves active jobs alone", func() {
		before := s.recruiter.Snapshot().Jobs

		draft := builder.NewJobBuilder().AsDraft().BuildCreateRequestDTO()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, draft, "")

		var job recruiter.Job
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &job)
		s.Equal(recruiter.JobStatusDraft, job.Status)

		after := s.recruiter.Snapshot().Jobs
		s.Equal(before.TotalJobs+1, after.TotalJobs)
		s.Equal(before.ActiveJobs, after.ActiveJobs)
	})

	validation := []testCaseRecruiter{
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: company (required)", mutate: testutil.Field("company", nil), expectCode: http.StatusBadRequest},
		{name: "unknown job type", mutate: testutil.Field("type", "Gig"), expectCode: http.StatusBadRequest},
		{name: "unknown status", mutate: testutil.Field("status", "archived"), expectCode: http.StatusBadRequest},
		{name: "status omitted defaults to draft", mutate: testutil.Field("status", nil), expectCode: http.StatusCreated},
	}

	s.Run("validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("success: patch merges fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/job-5", map[string]any{"status": "active"}, "")

		var job recruiter.Job
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &job)
		s.Equal(recruiter.JobStatusActive, job.Status)
		s.Equal("Product Manager", job.Title)
	})

	s.Run("error: 404 for unknown job", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/nope", map[string]any{"title": "x"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Failed to update job")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"/nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Failed to delete job")
	})

	s.Run("success: view counter increments", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/job-1/views", nil, "")

		var job recruiter.Job
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &job)
		s.Positive(job.Views)
	})

	s.Run("success: search only sees active jobs", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"/search?q=designer", nil, "")

		var body resdto.JobSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Jobs, 1)
		s.Equal("job-2", body.Jobs[0].ID)
	})

	s.Run("success: delete returns 204", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"/job-4", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// Applicants
// ================================================================================

func (s *RecruiterHandlerTestSuite) TestApplicants() {
	url := "/api/applicants"
	reqBody := builder.NewApplicantBuilder().ForJob("job-2").BuildCreateRequestDTO()

	s.Require().NoError(s.recruiter.Init(context.Background()))

	s.Run("success: create bumps the job counter", func() {
		before := jobApplicants(s, "job-2")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var a recruiter.Applicant
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &a)
		s.Equal(recruiter.ApplicantStatusNew, a.Status)
		s.Equal(before+1, jobApplicants(s, "job-2"))
	})

	validation := []testCaseRecruiter{
		{name: "missing field: jobId (required)", mutate: testutil.Field("jobId", nil), expectCode: http.StatusBadRequest},
		{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "negative experience", mutate: testutil.Field("experience", -1), expectCode: http.StatusBadRequest},
		{name: "unknown job", mutate: testutil.Field("jobId", "job-404"), expectCode: http.StatusNotFound},
	}

	s.Run("validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("success: status change notifies the candidate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/app-3/status", map[string]any{"status": "interview"}, "")

		var a recruiter.Applicant
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &a)
		s.Equal(recruiter.ApplicantStatusInterview, a.Status)
		s.Require().NotNil(a.LastContactDate)
		s.True(a.LastContactDate.Equal(fixedNow))

		s.Require().Len(s.notifier.sent, 1)
		s.Equal(notification.TypeInterviewInvitation, s.notifier.sent[0].t)
		s.Equal(notification.InterviewData{UserName: "Michael Brown", JobTitle: "UX/UI Designer", Company: "DesignHub"}, s.notifier.sent[0].data)
	})

	s.Run("error: 400 on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"/app-3/status", map[string]any{"status": "ghosted"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("success: export is an xlsx workbook", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"/export", nil, "")

		s.Require().Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":        "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"Content-Disposition": "attachment; filename*=UTF-8''applicants-20260316.xlsx",
		})

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		s.Require().NoError(err)
		defer f.Close()
		rows, err := f.GetRows("Applicants")
		s.Require().NoError(err)
		s.Len(rows, 1+s.recruiter.Snapshot().Applicants.TotalApplicants)
	})

	s.Run("success: delete returns 204 and decrements the counter", func() {
		before := jobApplicants(s, "job-3")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"/app-5", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(max(before-1, 0), jobApplicants(s, "job-3"))
	})
}

// ================================================================================
// Email templates
// ================================================================================

func (s *RecruiterHandlerTestSuite) TestEmailTemplates() {
	url := "/api/email-templates"

	s.Run("success: list reports defaults per category", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.EmailTemplateListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.TotalTemplates)
		s.Equal("template-1", body.Defaults[recruiter.CategoryApplication])
	})

	s.Run("success: render substitutes placeholders", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/template-1/render", map[string]any{
			"variables": map[string]string{"candidateName": "Ada", "position": "Engineer", "company": "Acme"},
		}, "")

		var body resdto.RenderedEmailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Contains(body.Body, "Ada")
		s.NotContains(body.Body, "{{candidateName}}")
	})

	s.Run("error: default template cannot be deleted", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"/template-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Failed to delete email template")
	})

	s.Run("success: create then delete a non-default template", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"name": "Follow up", "subject": "Checking in", "body": "Hi {{candidateName}}", "category": "follow-up",
		}, "")
		var t recruiter.EmailTemplate
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &t)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"/"+t.ID, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on unknown category", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"name": "x", "subject": "y", "category": "spam",
		}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// Interviews
// ================================================================================

func (s *RecruiterHandlerTestSuite) TestInterviews() {
	url := "/api/interviews"
	schedule := map[string]any{
		"applicantId":  "app-1",
		"date":         fixedNow.Add(72 * time.Hour).Format(time.RFC3339),
		"duration":     60,
		"type":         "onsite",
		"interviewers": []string{"Jane"},
	}

	var id string
	s.Run("success: schedule denormalizes names", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, schedule, "")

		var iv recruiter.Interview
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &iv)
		s.Equal("John Smith", iv.ApplicantName)
		s.Equal("Senior Frontend Developer", iv.JobTitle)
		s.Equal(recruiter.InterviewScheduled, iv.Status)
		id = iv.ID
	})

	validation := []testCaseRecruiter{
		{name: "missing field: date (required)", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
		{name: "zero duration", mutate: testutil.Field("duration", 0), expectCode: http.StatusBadRequest},
		{name: "unknown applicant", mutate: testutil.Field("applicantId", "app-404"), expectCode: http.StatusNotFound},
	}

	s.Run("validation", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), schedule, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("success: complete then cancel conflicts", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/"+id+"/complete", map[string]any{"feedback": "Great"}, "")
		var iv recruiter.Interview
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &iv)
		s.Equal("Great", iv.Feedback)

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"/"+id+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Failed to cancel interview")
	})

	s.Run("success: list counts by status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.InterviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(body.Total, body.Scheduled+body.Completed+body.Cancelled)
		s.GreaterOrEqual(body.Completed, 1)
	})
}

// ================================================================================
// Dashboard
// ================================================================================

func (s *RecruiterHandlerTestSuite) TestDashboardMetrics() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/dashboard/metrics", nil, "")

	var m recruiter.DashboardMetrics
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &m)
	s.Equal(5, m.TotalJobs)
	s.Equal("40.0%", m.ConversionRate)
	s.Equal(recruiter.TimeToHire, m.TimeToHire)
	s.Len(m.JobViewsData, 7)
	s.Len(m.TopJobListings, 3)
}

func jobApplicants(s *RecruiterHandlerTestSuite, id string) int {
	for _, j := range s.recruiter.Snapshot().Jobs.Jobs {
		if j.ID == id {
			return j.Applicants
		}
	}
	s.T().Fatalf("job %s not loaded", id)
	return 0
}
