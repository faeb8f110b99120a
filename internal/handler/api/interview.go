package api

import (
	"net/http"

	reqdto "careerlaunch/internal/handler/dto/request"
	resdto "careerlaunch/internal/handler/dto/response"
	"careerlaunch/internal/handler/httperr"
	"careerlaunch/internal/state"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	recruiter *state.Recruiter
}

func NewInterviewHandler(recruiter *state.Recruiter) *InterviewHandler {
	return &InterviewHandler{recruiter: recruiter}
}

// @Summary List interviews
// @Tags interviews
// @Produce json
// @Success 200 {object} resdto.InterviewListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/interviews [get]
func (h *InterviewHandler) List(c *gin.Context) {
	if err := h.recruiter.FetchInterviews(c.Request.Context()); err != nil {
		httperr.Abort(c, err, h.recruiter.Snapshot().Interviews.Error)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInterviewsSlice(h.recruiter.Snapshot().Interviews))
}

// @Summary Schedule interview
// @Tags interviews
// @Accept json
// @Produce json
// @Param request body reqdto.ScheduleInterviewRequest true "Interview"
// @Success 201 {object} recruiter.Interview
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/interviews [post]
func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req reqdto.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	iv, err := h.recruiter.ScheduleInterview(c.Request.Context(), draft)
	if err != nil {
		httperr.Abort(c, err, "Failed to schedule interview")
		return
	}
	c.JSON(http.StatusCreated, iv)
}

// @Summary Update interview
// @Tags interviews
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param request body reqdto.UpdateInterviewRequest true "Fields to change"
// @Success 200 {object} recruiter.Interview
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/interviews/{id} [patch]
func (h *InterviewHandler) Update(c *gin.Context) {
	var req reqdto.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	iv, err := h.recruiter.UpdateInterview(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		httperr.Abort(c, err, "Failed to update interview")
		return
	}
	c.JSON(http.StatusOK, iv)
}

// @Summary Complete interview
// @Tags interviews
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param request body reqdto.CompleteInterviewRequest false "Feedback"
// @Success 200 {object} recruiter.Interview
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/interviews/{id}/complete [post]
func (h *InterviewHandler) Complete(c *gin.Context) {
	var req reqdto.CompleteInterviewRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}
	iv, err := h.recruiter.CompleteInterview(c.Request.Context(), c.Param("id"), req.Feedback)
	if err != nil {
		httperr.Abort(c, err, "Failed to complete interview")
		return
	}
	c.JSON(http.StatusOK, iv)
}

// @Summary Cancel interview
// @Tags interviews
// @Produce json
// @Param id path string true "Interview ID"
// @Success 200 {object} recruiter.Interview
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/interviews/{id}/cancel [post]
func (h *InterviewHandler) Cancel(c *gin.Context) {
	iv, err := h.recruiter.CancelInterview(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to cancel interview")
		return
	}
	c.JSON(http.StatusOK, iv)
}

// @Summary Delete interview
// @Tags interviews
// @Param id path string true "Interview ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/interviews/{id} [delete]
func (h *InterviewHandler) Delete(c *gin.Context) {
	if err := h.recruiter.DeleteInterview(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err, "Failed to delete interview")
		return
	}
	c.Status(http.StatusNoContent)
}
