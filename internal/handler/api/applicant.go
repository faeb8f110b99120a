package api

import (
	"fmt"
	"net/http"
	"net/url"

	reqdto "careerlaunch/internal/handler/dto/request"
	resdto "careerlaunch/internal/handler/dto/response"
	"careerlaunch/internal/handler/httperr"
	"careerlaunch/internal/infra/export"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/state"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApplicantHandler struct {
	recruiter *state.Recruiter
	clock     clock.Clock
}

func NewApplicantHandler(recruiter *state.Recruiter, clock clock.Clock) *ApplicantHandler {
	return &ApplicantHandler{recruiter: recruiter, clock: clock}
}

// @Summary List applicants
// @Tags applicants
// @Produce json
// @Success 200 {object} resdto.ApplicantListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/applicants [get]
func (h *ApplicantHandler) List(c *gin.Context) {
	if err := h.recruiter.FetchApplicants(c.Request.Context()); err != nil {
		httperr.Abort(c, err, h.recruiter.Snapshot().Applicants.Error)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApplicantsSlice(h.recruiter.Snapshot().Applicants))
}

// @Summary Create applicant
// @Description Record an application; the referenced job's applicant counter goes up
// @Tags applicants
// @Accept json
// @Produce json
// @Param request body reqdto.CreateApplicantRequest true "Applicant"
// @Success 201 {object} recruiter.Applicant
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/applicants [post]
func (h *ApplicantHandler) Create(c *gin.Context) {
	var req reqdto.CreateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	a, err := h.recruiter.CreateApplicant(c.Request.Context(), draft)
	if err != nil {
		httperr.Abort(c, err, "Failed to create applicant")
		return
	}
	c.JSON(http.StatusCreated, a)
}

// @Summary Update applicant
// @Tags applicants
// @Accept json
// @Produce json
// @Param id path string true "Applicant ID"
// @Param request body reqdto.UpdateApplicantRequest true "Fields to change"
// @Success 200 {object} recruiter.Applicant
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/applicants/{id} [patch]
func (h *ApplicantHandler) Update(c *gin.Context) {
	var req reqdto.UpdateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	a, err := h.recruiter.UpdateApplicant(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		httperr.Abort(c, err, "Failed to update applicant")
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary Change applicant status
// @Description Sets lastContactDate and may notify the candidate
// @Tags applicants
// @Accept json
// @Produce json
// @Param id path string true "Applicant ID"
// @Param request body reqdto.UpdateApplicantStatusRequest true "New status"
// @Success 200 {object} recruiter.Applicant
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/applicants/{id}/status [patch]
func (h *ApplicantHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateApplicantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	a, err := h.recruiter.UpdateApplicantStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		httperr.Abort(c, err, "Failed to update applicant status")
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary Delete applicant
// @Tags applicants
// @Param id path string true "Applicant ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/applicants/{id} [delete]
func (h *ApplicantHandler) Delete(c *gin.Context) {
	if err := h.recruiter.DeleteApplicant(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err, "Failed to delete applicant")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Export applicants
// @Description Download every applicant as an xlsx workbook
// @Tags applicants
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} httperr.Response
// @Router /api/applicants/export [get]
func (h *ApplicantHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.recruiter.FetchJobs(ctx); err != nil {
		httperr.Abort(c, err, "Failed to load jobs")
		return
	}
	if err := h.recruiter.FetchApplicants(ctx); err != nil {
		httperr.Abort(c, err, "Failed to load applicants")
		return
	}

	snap := h.recruiter.Snapshot()
	buf, err := export.Applicants(snap.Applicants.Applicants, snap.Jobs.Jobs)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build export", nil)
		return
	}

	filename := fmt.Sprintf("applicants-%s.xlsx", h.clock.Now().Format("20060102"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
