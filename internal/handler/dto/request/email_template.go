package request

import (
	"careerlaunch/internal/domain/recruiter"

	"github.com/jinzhu/copier"
)

type CreateEmailTemplateRequest struct {
	Name      string                     `json:"name" binding:"required,max=200"`
	Subject   string                     `json:"subject" binding:"required,max=500"`
	Body      string                     `json:"body"`
	Category  recruiter.TemplateCategory `json:"category" binding:"required,oneof=application interview offer rejection follow-up"`
	IsDefault bool                       `json:"isDefault"`
}

type UpdateEmailTemplateRequest struct {
	Name      *string                     `json:"name" binding:"omitempty,min=1,max=200"`
	Subject   *string                     `json:"subject" binding:"omitempty,min=1,max=500"`
	Body      *string                     `json:"body"`
	Category  *recruiter.TemplateCategory `json:"category" binding:"omitempty,oneof=application interview offer rejection follow-up"`
	IsDefault *bool                       `json:"isDefault"`
}

type RenderEmailTemplateRequest struct {
	Variables map[string]string `json:"variables"`
}

func (r *CreateEmailTemplateRequest) ToDomain() (recruiter.EmailTemplateDraft, error) {
	var d recruiter.EmailTemplateDraft
	err := copier.Copy(&d, r)
	return d, err
}

func (r *UpdateEmailTemplateRequest) ToDomain() (recruiter.EmailTemplatePatch, error) {
	var p recruiter.EmailTemplatePatch
	err := copier.Copy(&p, r)
	return p, err
}
