package repository

import (
	"context"
	"log/slog"
	"time"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/infra"
	"careerlaunch/internal/infra/collection"
	"careerlaunch/internal/infra/kvstore"
)

// EmailTemplateRepository keeps at most one default template per category.
// Writes that make a template the default demote the previous one in the
// same serialized write. The collection is not embedded so that every write
// goes through the default rule.
type EmailTemplateRepository struct {
	items  *collection.Collection[recruiter.EmailTemplate]
	logger *slog.Logger
}

func NewEmailTemplateRepository(store kvstore.Store, logger *slog.Logger) *EmailTemplateRepository {
	return &EmailTemplateRepository{
		items:  collection.New(store, KeyEmailTemplates, func(t recruiter.EmailTemplate) string { return t.ID }, logger),
		logger: logger,
	}
}

func (r *EmailTemplateRepository) List(ctx context.Context) ([]recruiter.EmailTemplate, error) {
	return r.items.List(ctx)
}

func (r *EmailTemplateRepository) Get(ctx context.Context, id string) (recruiter.EmailTemplate, error) {
	return r.items.Get(ctx, id)
}

// SeedIfAbsent writes the built-in templates only when none are stored yet.
func (r *EmailTemplateRepository) SeedIfAbsent(ctx context.Context, templates []recruiter.EmailTemplate) (bool, error) {
	return r.items.SeedIfAbsent(ctx, templates)
}

func (r *EmailTemplateRepository) Reset(ctx context.Context, templates []recruiter.EmailTemplate) error {
	return r.items.Reset(ctx, templates)
}

func (r *EmailTemplateRepository) Create(ctx context.Context, t recruiter.EmailTemplate, now time.Time) error {
	return r.items.Mutate(ctx, func(items []recruiter.EmailTemplate) ([]recruiter.EmailTemplate, error) {
		items = append(items, t)
		recruiter.EnforceSingleDefault(items, t, now)
		return items, nil
	})
}

// Edit applies fn to the template with the given id, then enforces the default rule.
func (r *EmailTemplateRepository) Edit(ctx context.Context, id string, now time.Time, fn func(recruiter.EmailTemplate) (recruiter.EmailTemplate, error)) (recruiter.EmailTemplate, error) {
	var updated recruiter.EmailTemplate
	err := r.items.Mutate(ctx, func(items []recruiter.EmailTemplate) ([]recruiter.EmailTemplate, error) {
		i := indexOfTemplate(items, id)
		if i < 0 {
			return nil, infra.NotFound(r.logger, "email template not found: "+id)
		}
		next, err := fn(items[i])
		if err != nil {
			return nil, err
		}
		items[i] = next
		recruiter.EnforceSingleDefault(items, next, now)
		updated = next
		return items, nil
	})
	return updated, err
}

// Remove deletes the template unless guard rejects it.
func (r *EmailTemplateRepository) Remove(ctx context.Context, id string, guard func(recruiter.EmailTemplate) error) (recruiter.EmailTemplate, error) {
	var removed recruiter.EmailTemplate
	err := r.items.Mutate(ctx, func(items []recruiter.EmailTemplate) ([]recruiter.EmailTemplate, error) {
		i := indexOfTemplate(items, id)
		if i < 0 {
			return nil, infra.NotFound(r.logger, "email template not found: "+id)
		}
		if err := guard(items[i]); err != nil {
			return nil, err
		}
		removed = items[i]
		return append(items[:i], items[i+1:]...), nil
	})
	return removed, err
}

func indexOfTemplate(items []recruiter.EmailTemplate, id string) int {
	for i, t := range items {
		if t.ID == id {
			return i
		}
	}
	return -1
}
