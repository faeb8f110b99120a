package repository

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/infra/collection"
	"careerlaunch/internal/infra/kvstore"
)

type InterviewRepository struct {
	*collection.Collection[recruiter.Interview]
}

func NewInterviewRepository(store kvstore.Store, logger *slog.Logger) *InterviewRepository {
	return &InterviewRepository{
		Collection: collection.New(store, KeyInterviews, func(iv recruiter.Interview) string { return iv.ID }, logger),
	}
}

func (r *InterviewRepository) Create(ctx context.Context, iv recruiter.Interview) error {
	return r.Insert(ctx, iv, collection.Append)
}
