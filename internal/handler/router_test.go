//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"careerlaunch/internal/domain/notification"
	"careerlaunch/internal/handler"
	"careerlaunch/internal/handler/api"
	"careerlaunch/internal/infra/kvstore"
	"careerlaunch/internal/infra/repository"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/pkg/latency"
	"careerlaunch/internal/state"
	"careerlaunch/internal/usecase"
	"careerlaunch/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type noopDeliverer struct{}

func (noopDeliverer) Dispatch(notification.Notification) {}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.NewTestConfig()
	cfg.CORS = config.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}

	store := kvstore.NewMemoryStore()
	clk := clock.NewRealClock()
	sim := latency.None()
	jobRepo := repository.NewJobRepository(store, logger)
	applicantRepo := repository.NewApplicantRepository(store, logger)
	templateRepo := repository.NewEmailTemplateRepository(store, logger)
	interviewRepo := repository.NewInterviewRepository(store, logger)

	notifications := state.NewNotifications(usecase.NewNotificationUseCase(
		repository.NewNotificationRepository(store, logger),
		repository.NewPreferencesRepository(store, logger),
		noopDeliverer{}, sim, clk, logger,
	), logger)
	recruiter := state.NewRecruiter(state.RecruiterDeps{
		Jobs:       usecase.NewJobUseCase(jobRepo, sim, clk, logger),
		Applicants: usecase.NewApplicantUseCase(applicantRepo, jobRepo, sim, clk, logger),
		Templates:  usecase.NewEmailTemplateUseCase(templateRepo, sim, clk, logger),
		Interviews: usecase.NewInterviewUseCase(interviewRepo, applicantRepo, jobRepo, sim, logger),
		Metrics:    usecase.NewMetricsUseCase(jobRepo, applicantRepo, sim, clk),
		Notifier:   notifications,
	}, cfg, logger)

	engine := gin.New()
	handler.NewRouter(engine, cfg, logger, handler.Handlers{
		Notifications:  api.NewNotificationHandler(notifications),
		Jobs:           api.NewJobHandler(recruiter),
		Applicants:     api.NewApplicantHandler(recruiter, clk),
		EmailTemplates: api.NewEmailTemplateHandler(recruiter),
		Interviews:     api.NewInterviewHandler(recruiter),
		Dashboard:      api.NewDashboardHandler(recruiter),
	})
	return engine
}

func TestRouter(t *testing.T) {
	router := newRouter(t)

	t.Run("health", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("empty store lists nothing", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/jobs", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.EqualValues(t, 0, body["totalJobs"])
		assert.Equal(t, []any{}, body["jobs"])
	})

	t.Run("domain not found maps to 404 with detail", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodDelete, "/api/interviews/missing", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Failed to delete interview")
		httptest.AssertErrorDetail(t, rec, http.StatusNotFound, "interview not found")
	})

	t.Run("read-all does not collide with the id route", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/api/notifications/read-all", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("request id is propagated", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "abc-123")

		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "abc-123"})
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		rec := httptest.PerformRawRequest(t, router, http.MethodPost, "/api/jobs", `{"title":`)

		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request")
	})
}

func TestRouter_RegistersEveryRouteWithItsMethod(t *testing.T) {
	router := newRouter(t)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /api/notifications",
		"POST /api/notifications",
		"POST /api/notifications/read-all",
		"PATCH /api/notifications/preferences",
		"POST /api/notifications/:id/read",
		"GET /api/jobs/search",
		"POST /api/jobs/:id/views",
		"GET /api/applicants/export",
		"PATCH /api/applicants/:id/status",
		"POST /api/email-templates/:id/render",
		"POST /api/interviews/:id/cancel",
		"GET /api/dashboard/metrics",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
	assert.False(t, registered["GET /api/notifications/read-all"])
}
