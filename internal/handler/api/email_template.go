package api

import (
	"net/http"

	reqdto "careerlaunch/internal/handler/dto/request"
	resdto "careerlaunch/internal/handler/dto/response"
	"careerlaunch/internal/handler/httperr"
	"careerlaunch/internal/state"

	"github.com/gin-gonic/gin"
)

type EmailTemplateHandler struct {
	recruiter *state.Recruiter
}

func NewEmailTemplateHandler(recruiter *state.Recruiter) *EmailTemplateHandler {
	return &EmailTemplateHandler{recruiter: recruiter}
}

// @Summary List email templates
// @Tags email-templates
// @Produce json
// @Success 200 {object} resdto.EmailTemplateListResponse
// @Failure 500 {object} httperr.Response
// @Router /api/email-templates [get]
func (h *EmailTemplateHandler) List(c *gin.Context) {
	if err := h.recruiter.FetchEmailTemplates(c.Request.Context()); err != nil {
		httperr.Abort(c, err, h.recruiter.Snapshot().Templates.Error)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplatesSlice(h.recruiter.Snapshot().Templates))
}

// @Summary Create email template
// @Description A new default template takes over the default flag of its category
// @Tags email-templates
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEmailTemplateRequest true "Template"
// @Success 201 {object} recruiter.EmailTemplate
// @Failure 400 {object} httperr.Response
// @Router /api/email-templates [post]
func (h *EmailTemplateHandler) Create(c *gin.Context) {
	var req reqdto.CreateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	t, err := h.recruiter.CreateEmailTemplate(c.Request.Context(), draft)
	if err != nil {
		httperr.Abort(c, err, "Failed to create email template")
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary Update email template
// @Tags email-templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body reqdto.UpdateEmailTemplateRequest true "Fields to change"
// @Success 200 {object} recruiter.EmailTemplate
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/email-templates/{id} [patch]
func (h *EmailTemplateHandler) Update(c *gin.Context) {
	var req reqdto.UpdateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	t, err := h.recruiter.UpdateEmailTemplate(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		httperr.Abort(c, err, "Failed to update email template")
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary Delete email template
// @Description Default templates cannot be deleted
// @Tags email-templates
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/email-templates/{id} [delete]
func (h *EmailTemplateHandler) Delete(c *gin.Context) {
	if err := h.recruiter.DeleteEmailTemplate(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err, "Failed to delete email template")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Render email template
// @Description Substitute {{placeholder}} variables; unknown placeholders are left as is
// @Tags email-templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body reqdto.RenderEmailTemplateRequest true "Variables"
// @Success 200 {object} resdto.RenderedEmailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/email-templates/{id}/render [post]
func (h *EmailTemplateHandler) Render(c *gin.Context) {
	var req reqdto.RenderEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rendered, err := h.recruiter.RenderEmailTemplate(c.Request.Context(), c.Param("id"), req.Variables)
	if err != nil {
		httperr.Abort(c, err, "Failed to render email template")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRenderedEmail(rendered))
}
