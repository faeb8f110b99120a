package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"careerlaunch/internal/handler/api"
	"careerlaunch/internal/handler/middleware"
	"careerlaunch/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Notifications  *api.NotificationHandler
	Jobs           *api.JobHandler
	Applicants     *api.ApplicantHandler
	EmailTemplates *api.EmailTemplateHandler
	Interviews     *api.InterviewHandler
	Dashboard      *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/notifications"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notifications.List},
			{Method: http.MethodPost, Path: "", Handler: h.Notifications.Send},
			{Method: http.MethodPost, Path: "/read-all", Handler: h.Notifications.MarkAllAsRead},
			{Method: http.MethodGet, Path: "/preferences", Handler: h.Notifications.GetPreferences},
			{Method: http.MethodPatch, Path: "/preferences", Handler: h.Notifications.UpdatePreferences},
			{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notifications.MarkAsRead},
		})

		addRoutes(apiGroup.Group("/jobs"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Jobs.List},
			{Method: http.MethodPost, Path: "", Handler: h.Jobs.Create},
			{Method: http.MethodGet, Path: "/search", Handler: h.Jobs.Search},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Jobs.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Jobs.Delete},
			{Method: http.MethodPost, Path: "/:id/views", Handler: h.Jobs.RecordView},
		})

		addRoutes(apiGroup.Group("/applicants"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Applicants.List},
			{Method: http.MethodPost, Path: "", Handler: h.Applicants.Create},
			{Method: http.MethodGet, Path: "/export", Handler: h.Applicants.Export},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Applicants.Update},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Applicants.UpdateStatus},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Applicants.Delete},
		})

		addRoutes(apiGroup.Group("/email-templates"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.EmailTemplates.List},
			{Method: http.MethodPost, Path: "", Handler: h.EmailTemplates.Create},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.EmailTemplates.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.EmailTemplates.Delete},
			{Method: http.MethodPost, Path: "/:id/render", Handler: h.EmailTemplates.Render},
		})

		addRoutes(apiGroup.Group("/interviews"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Interviews.List},
			{Method: http.MethodPost, Path: "", Handler: h.Interviews.Schedule},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Interviews.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Interviews.Delete},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Interviews.Complete},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Interviews.Cancel},
		})

		addRoutes(apiGroup.Group("/dashboard"), []route{
			{Method: http.MethodGet, Path: "/metrics", Handler: h.Dashboard.Metrics},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
