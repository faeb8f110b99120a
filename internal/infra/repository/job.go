package repository

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/infra/collection"
	"careerlaunch/internal/infra/kvstore"
)

// JobRepository exposes the generic record operations (List, Get, Update,
// Delete, Seed) plus the counter maintenance the service needs.
type JobRepository struct {
	*collection.Collection[recruiter.Job]
}

func NewJobRepository(store kvstore.Store, logger *slog.Logger) *JobRepository {
	return &JobRepository{
		Collection: collection.New(store, KeyJobs, func(j recruiter.Job) string { return j.ID }, logger),
	}
}

func (r *JobRepository) Create(ctx context.Context, j recruiter.Job) error {
	return r.Insert(ctx, j, collection.Append)
}

// AdjustApplicants moves the job's applicant counter by delta, never below zero.
func (r *JobRepository) AdjustApplicants(ctx context.Context, jobID string, delta int) (recruiter.Job, error) {
	return r.Update(ctx, jobID, func(j *recruiter.Job) error {
		j.Applicants = max(j.Applicants+delta, 0)
		return nil
	})
}

func (r *JobRepository) IncrementViews(ctx context.Context, jobID string) (recruiter.Job, error) {
	return r.Update(ctx, jobID, func(j *recruiter.Job) error {
		j.Views++
		return nil
	})
}
