// Package seed writes the sample recruiter dataset shown on first start.
package seed

import (
	"context"
	"log/slog"

	"careerlaunch/internal/infra/repository"
)

type Seeder struct {
	jobs       *repository.JobRepository
	applicants *repository.ApplicantRepository
	templates  *repository.EmailTemplateRepository
	interviews *repository.InterviewRepository
	logger     *slog.Logger
}

func NewSeeder(
	jobs *repository.JobRepository,
	applicants *repository.ApplicantRepository,
	templates *repository.EmailTemplateRepository,
	interviews *repository.InterviewRepository,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		jobs:       jobs,
		applicants: applicants,
		templates:  templates,
		interviews: interviews,
		logger:     logger,
	}
}

// SeedIfAbsent fills each recruiter collection whose key has never been
// written. Collections that exist, even empty ones, are left alone.
func (s *Seeder) SeedIfAbsent(ctx context.Context) (seeded []string, err error) {
	steps := []struct {
		key  string
		seed func(context.Context) (bool, error)
	}{
		{repository.KeyJobs, func(ctx context.Context) (bool, error) { return s.jobs.SeedIfAbsent(ctx, Jobs()) }},
		{repository.KeyApplicants, func(ctx context.Context) (bool, error) { return s.applicants.SeedIfAbsent(ctx, Applicants()) }},
		{repository.KeyEmailTemplates, func(ctx context.Context) (bool, error) { return s.templates.SeedIfAbsent(ctx, EmailTemplates()) }},
		{repository.KeyInterviews, func(ctx context.Context) (bool, error) { return s.interviews.SeedIfAbsent(ctx, Interviews()) }},
	}

	for _, step := range steps {
		ok, err := step.seed(ctx)
		if err != nil {
			return seeded, err
		}
		if ok {
			seeded = append(seeded, step.key)
		}
	}
	if len(seeded) > 0 {
		s.logger.Info("Seeded sample data", "keys", seeded)
	}
	return seeded, nil
}

// Reset overwrites every recruiter collection with the sample dataset.
func (s *Seeder) Reset(ctx context.Context) error {
	if err := s.jobs.Reset(ctx, Jobs()); err != nil {
		return err
	}
	if err := s.applicants.Reset(ctx, Applicants()); err != nil {
		return err
	}
	if err := s.templates.Reset(ctx, EmailTemplates()); err != nil {
		return err
	}
	if err := s.interviews.Reset(ctx, Interviews()); err != nil {
		return err
	}
	s.logger.Info("Reset recruiter data to the sample dataset")
	return nil
}
