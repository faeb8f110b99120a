package repository

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/infra/collection"
	"careerlaunch/internal/infra/kvstore"
)

type ApplicantRepository struct {
	*collection.Collection[recruiter.Applicant]
}

func NewApplicantRepository(store kvstore.Store, logger *slog.Logger) *ApplicantRepository {
	return &ApplicantRepository{
		Collection: collection.New(store, KeyApplicants, func(a recruiter.Applicant) string { return a.ID }, logger),
	}
}

func (r *ApplicantRepository) Create(ctx context.Context, a recruiter.Applicant) error {
	return r.Insert(ctx, a, collection.Append)
}
