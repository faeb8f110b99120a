package usecase

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/latency"

	"github.com/google/uuid"
)

type JobList struct {
	Jobs       []recruiter.Job
	TotalJobs  int
	ActiveJobs int
}

type JobUseCase interface {
	GetJobs(ctx context.Context) (JobList, error)
	CreateJob(ctx context.Context, draft recruiter.JobDraft) (recruiter.Job, error)
	UpdateJob(ctx context.Context, id string, patch recruiter.JobPatch) (recruiter.Job, error)
	DeleteJob(ctx context.Context, id string) error
	RecordJobView(ctx context.Context, id string) (recruiter.Job, error)
	// SearchJobs is the job seeker view: only active jobs are searched.
	SearchJobs(ctx context.Context, query string, filter recruiter.JobFilter) ([]recruiter.Job, error)
}

type jobUseCaseImpl struct {
	jobs    JobRepository
	latency latency.Simulator
	clock   clock.Clock
	logger  *slog.Logger
}

func NewJobUseCase(jobs JobRepository, sim latency.Simulator, clock clock.Clock, logger *slog.Logger) JobUseCase {
	return &jobUseCaseImpl{jobs: jobs, latency: sim, clock: clock, logger: logger}
}

func (u *jobUseCaseImpl) GetJobs(ctx context.Context) (JobList, error) {
	if err := u.latency.Read(ctx); err != nil {
		return JobList{}, err
	}
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return JobList{}, storeErr(err, ErrJobNotFound)
	}
	return JobList{Jobs: jobs, TotalJobs: len(jobs), ActiveJobs: recruiter.CountActiveJobs(jobs)}, nil
}

func (u *jobUseCaseImpl) CreateJob(ctx context.Context, draft recruiter.JobDraft) (recruiter.Job, error) {
	if err := u.latency.Write(ctx); err != nil {
		return recruiter.Job{}, err
	}
	job, err := recruiter.NewJob("job-"+uuid.NewString(), draft, u.clock.Now())
	if err != nil {
		return recruiter.Job{}, invalid(err)
	}
	if err := u.jobs.Create(ctx, job); err != nil {
		return recruiter.Job{}, storeErr(err, ErrJobNotFound)
	}
	u.logger.Info("Job created", slog.String("id", job.ID), slog.String("status", string(job.Status)))
	return job, nil
}

func (u *jobUseCaseImpl) UpdateJob(ctx context.Context, id string, patch recruiter.JobPatch) (recruiter.Job, error) {
	if err := u.latency.Write(ctx); err != nil {
		return recruiter.Job{}, err
	}
	job, err := u.jobs.Update(ctx, id, func(j *recruiter.Job) error {
		next, err := j.Apply(patch)
		if err != nil {
			return invalid(err)
		}
		*j = next
		return nil
	})
	if err != nil {
		return recruiter.Job{}, storeErr(err, ErrJobNotFound)
	}
	return job, nil
}

func (u *jobUseCaseImpl) DeleteJob(ctx context.Context, id string) error {
	if err := u.latency.Write(ctx); err != nil {
		return err
	}
	if _, err := u.jobs.Delete(ctx, id); err != nil {
		return storeErr(err, ErrJobNotFound)
	}
	u.logger.Info("Job deleted", slog.String("id", id))
	return nil
}

func (u *jobUseCaseImpl) RecordJobView(ctx context.Context, id string) (recruiter.Job, error) {
	job, err := u.jobs.IncrementViews(ctx, id)
	if err != nil {
		return recruiter.Job{}, storeErr(err, ErrJobNotFound)
	}
	return job, nil
}

func (u *jobUseCaseImpl) SearchJobs(ctx context.Context, query string, filter recruiter.JobFilter) ([]recruiter.Job, error) {
	if err := u.latency.Read(ctx); err != nil {
		return nil, err
	}
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return nil, storeErr(err, ErrJobNotFound)
	}

	out := make([]recruiter.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.IsActive() && j.Matches(query, filter) {
			out = append(out, j)
		}
	}
	return out, nil
}
