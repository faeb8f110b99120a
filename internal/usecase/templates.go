package usecase

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/latency"

	"github.com/google/uuid"
)

type EmailTemplateList struct {
	Templates      []recruiter.EmailTemplate
	TotalTemplates int
	// Defaults maps each category to its default template id.
	Defaults map[recruiter.TemplateCategory]string
}

type RenderedEmail struct {
	Subject string
	Body    string
}

type EmailTemplateUseCase interface {
	GetEmailTemplates(ctx context.Context) (EmailTemplateList, error)
	CreateEmailTemplate(ctx context.Context, draft recruiter.EmailTemplateDraft) (recruiter.EmailTemplate, error)
	UpdateEmailTemplate(ctx context.Context, id string, patch recruiter.EmailTemplatePatch) (recruiter.EmailTemplate, error)
	DeleteEmailTemplate(ctx context.Context, id string) error
	RenderEmailTemplate(ctx context.Context, id string, vars map[string]string) (RenderedEmail, error)
}

type emailTemplateUseCaseImpl struct {
	templates EmailTemplateRepository
	latency   latency.Simulator
	clock     clock.Clock
	logger    *slog.Logger
}

func NewEmailTemplateUseCase(
	templates EmailTemplateRepository,
	sim latency.Simulator,
	clock clock.Clock,
	logger *slog.Logger,
) EmailTemplateUseCase {
	return &emailTemplateUseCaseImpl{templates: templates, latency: sim, clock: clock, logger: logger}
}

func (u *emailTemplateUseCaseImpl) GetEmailTemplates(ctx context.Context) (EmailTemplateList, error) {
	if err := u.latency.Read(ctx); err != nil {
		return EmailTemplateList{}, err
	}
	templates, err := u.templates.List(ctx)
	if err != nil {
		return EmailTemplateList{}, storeErr(err, ErrEmailTemplateNotFound)
	}
	return EmailTemplateList{
		Templates:      templates,
		TotalTemplates: len(templates),
		Defaults:       recruiter.DefaultsByCategory(templates),
	}, nil
}

func (u *emailTemplateUseCaseImpl) CreateEmailTemplate(
	ctx context.Context,
	draft recruiter.EmailTemplateDraft,
) (recruiter.EmailTemplate, error) {
	if err := u.latency.Write(ctx); err != nil {
		return recruiter.EmailTemplate{}, err
	}
	now := u.clock.Now()
	tmpl, err := recruiter.NewEmailTemplate("template-"+uuid.NewString(), draft, now)
	if err != nil {
		return recruiter.EmailTemplate{}, invalid(err)
	}
	if err := u.templates.Create(ctx, tmpl, now); err != nil {
		return recruiter.EmailTemplate{}, storeErr(err, ErrEmailTemplateNotFound)
	}
	return tmpl, nil
}

func (u *emailTemplateUseCaseImpl) UpdateEmailTemplate(
	ctx context.Context,
	id string,
	patch recruiter.EmailTemplatePatch,
) (recruiter.EmailTemplate, error) {
	if err := u.latency.Write(ctx); err != nil {
		return recruiter.EmailTemplate{}, err
	}
	now := u.clock.Now()
	tmpl, err := u.templates.Edit(ctx, id, now, func(t recruiter.EmailTemplate) (recruiter.EmailTemplate, error) {
		next, err := t.Apply(patch, now)
		if err != nil {
			return recruiter.EmailTemplate{}, invalid(err)
		}
		return next, nil
	})
	if err != nil {
		return recruiter.EmailTemplate{}, storeErr(err, ErrEmailTemplateNotFound)
	}
	return tmpl, nil
}

func (u *emailTemplateUseCaseImpl) DeleteEmailTemplate(ctx context.Context, id string) error {
	if err := u.latency.Write(ctx); err != nil {
		return err
	}
	_, err := u.templates.Remove(ctx, id, func(t recruiter.EmailTemplate) error {
		if t.IsDefault {
			return conflict(ErrDefaultTemplateUndeletable)
		}
		return nil
	})
	return storeErr(err, ErrEmailTemplateNotFound)
}

func (u *emailTemplateUseCaseImpl) RenderEmailTemplate(
	ctx context.Context,
	id string,
	vars map[string]string,
) (RenderedEmail, error) {
	tmpl, err := u.templates.Get(ctx, id)
	if err != nil {
		return RenderedEmail{}, storeErr(err, ErrEmailTemplateNotFound)
	}
	subject, body := tmpl.Render(vars)
	return RenderedEmail{Subject: subject, Body: body}, nil
}
