package usecase

import (
	"context"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/latency"
)

type MetricsUseCase interface {
	GetDashboardMetrics(ctx context.Context) (recruiter.DashboardMetrics, error)
}

type metricsUseCaseImpl struct {
	jobs       JobRepository
	applicants ApplicantRepository
	latency    latency.Simulator
	clock      clock.Clock
}

func NewMetricsUseCase(jobs JobRepository, applicants ApplicantRepository, sim latency.Simulator, clock clock.Clock) MetricsUseCase {
	return &metricsUseCaseImpl{jobs: jobs, applicants: applicants, latency: sim, clock: clock}
}

func (u *metricsUseCaseImpl) GetDashboardMetrics(ctx context.Context) (recruiter.DashboardMetrics, error) {
	if err := u.latency.Read(ctx); err != nil {
		return recruiter.DashboardMetrics{}, err
	}
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return recruiter.DashboardMetrics{}, storeErr(err, ErrJobNotFound)
	}
	applicants, err := u.applicants.List(ctx)
	if err != nil {
		return recruiter.DashboardMetrics{}, storeErr(err, ErrApplicantNotFound)
	}
	return recruiter.ComputeMetrics(jobs, applicants, u.clock.Now()), nil
}
