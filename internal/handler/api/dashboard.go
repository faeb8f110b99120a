package api

import (
	"net/http"

	"careerlaunch/internal/handler/httperr"
	"careerlaunch/internal/state"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	recruiter *state.Recruiter
}

func NewDashboardHandler(recruiter *state.Recruiter) *DashboardHandler {
	return &DashboardHandler{recruiter: recruiter}
}

// @Summary Dashboard metrics
// @Description Aggregates recomputed from the full job and applicant lists
// @Tags dashboard
// @Produce json
// @Success 200 {object} recruiter.DashboardMetrics
// @Failure 500 {object} httperr.Response
// @Router /api/dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	if err := h.recruiter.FetchDashboardMetrics(c.Request.Context()); err != nil {
		httperr.Abort(c, err, "Failed to load dashboard metrics")
		return
	}
	c.JSON(http.StatusOK, h.recruiter.Snapshot().Metrics.Metrics)
}
