package api

import (
	"net/http"

	reqdto "careerlaunch/internal/handler/dto/request"
	resdto "careerlaunch/internal/handler/dto/response"
	"careerlaunch/internal/handler/httperr"
	"careerlaunch/internal/state"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	recruiter *state.Recruiter
}

func NewJobHandler(recruiter *state.Recruiter) *JobHandler {
	return &JobHandler{recruiter: recruiter}
}

// @Summary List jobs
// @Tags jobs
// @Produce json
// @Success 200 {object} resdto.JobListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	if err := h.recruiter.FetchJobs(c.Request.Context()); err != nil {
		httperr.Abort(c, err, h.recruiter.Snapshot().Jobs.Error)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobsSlice(h.recruiter.Snapshot().Jobs))
}

// @Summary Create job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body reqdto.CreateJobRequest true "Job posting"
// @Success 201 {object} recruiter.Job
// @Failure 400 {object} httperr.Response
// @Router /api/jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req reqdto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	job, err := h.recruiter.CreateJob(c.Request.Context(), draft)
	if err != nil {
		httperr.Abort(c, err, "Failed to create job")
		return
	}
	c.Header("Location", "/api/jobs/"+job.ID)
	c.JSON(http.StatusCreated, job)
}

// @Summary Search active jobs
// @Description Job seeker search over active postings. q matches title, company and description
// @Tags jobs
// @Produce json
// @Param q query string false "Free text"
// @Param type query string false "Job type"
// @Param location query string false "Location substring"
// @Param industry query string false "Industry"
// @Success 200 {object} resdto.JobSearchResponse
// @Failure 400 {object} httperr.Response
// @Router /api/jobs/search [get]
func (h *JobHandler) Search(c *gin.Context) {
	var q reqdto.SearchJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	query, filter := q.ToDomain()
	jobs, err := h.recruiter.SearchJobs(c.Request.Context(), query, filter)
	if err != nil {
		httperr.Abort(c, err, "Failed to search jobs")
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobSearch(jobs))
}

// @Summary Update job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param request body reqdto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} recruiter.Job
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	var req reqdto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	job, err := h.recruiter.UpdateJob(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		httperr.Abort(c, err, "Failed to update job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// @Summary Delete job
// @Tags jobs
// @Param id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.recruiter.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err, "Failed to delete job")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Record a job view
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} recruiter.Job
// @Failure 404 {object} httperr.Response
// @Router /api/jobs/{id}/views [post]
func (h *JobHandler) RecordView(c *gin.Context) {
	job, err := h.recruiter.RecordJobView(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err, "Failed to record job view")
		return
	}
	c.JSON(http.StatusOK, job)
}
