package usecase

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/infra"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/latency"

	"github.com/google/uuid"
)

type ApplicantList struct {
	Applicants      []recruiter.Applicant
	TotalApplicants int
	NewApplicants   int
}

type ApplicantUseCase interface {
	GetApplicants(ctx context.Context) (ApplicantList, error)
	// CreateApplicant also bumps the applicant counter of the job applied to.
	CreateApplicant(ctx context.Context, draft recruiter.ApplicantDraft) (recruiter.Applicant, error)
	UpdateApplicantStatus(ctx context.Context, id string, status recruiter.ApplicantStatus) (recruiter.Applicant, error)
	UpdateApplicant(ctx context.Context, id string, patch recruiter.ApplicantPatch) (recruiter.Applicant, error)
	DeleteApplicant(ctx context.Context, id string) error
}

type applicantUseCaseImpl struct {
	applicants ApplicantRepository
	jobs       JobRepository
	latency    latency.Simulator
	clock      clock.Clock
	logger     *slog.Logger
}

func NewApplicantUseCase(
	applicants ApplicantRepository,
	jobs JobRepository,
	sim latency.Simulator,
	clock clock.Clock,
	logger *slog.Logger,
) ApplicantUseCase {
	return &applicantUseCaseImpl{applicants: applicants, jobs: jobs, latency: sim, clock: clock, logger: logger}
}

func (u *applicantUseCaseImpl) GetApplicants(ctx context.Context) (ApplicantList, error) {
	if err := u.latency.Read(ctx); err != nil {
		return ApplicantList{}, err
	}
	applicants, err := u.applicants.List(ctx)
	if err != nil {
		return ApplicantList{}, storeErr(err, ErrApplicantNotFound)
	}
	return ApplicantList{
		Applicants:      applicants,
		TotalApplicants: len(applicants),
		NewApplicants:   recruiter.CountApplicantsByStatus(applicants, recruiter.ApplicantStatusNew),
	}, nil
}

func (u *applicantUseCaseImpl) CreateApplicant(ctx context.Context, draft recruiter.ApplicantDraft) (recruiter.Applicant, error) {
	if err := u.latency.Write(ctx); err != nil {
		return recruiter.Applicant{}, err
	}
	if _, err := u.jobs.Get(ctx, draft.JobID); err != nil {
		return recruiter.Applicant{}, storeErr(err, ErrJobNotFound)
	}

	applicant, err := recruiter.NewApplicant("app-"+uuid.NewString(), draft, u.clock.Now())
	if err != nil {
		return recruiter.Applicant{}, invalid(err)
	}
	if err := u.applicants.Create(ctx, applicant); err != nil {
		return recruiter.Applicant{}, storeErr(err, ErrApplicantNotFound)
	}
	if _, err := u.jobs.AdjustApplicants(ctx, applicant.JobID, 1); err != nil {
		// The job count never moved, so the applicant must not stay behind.
		if _, rbErr := u.applicants.Delete(ctx, applicant.ID); rbErr != nil {
			u.logger.Error("Failed to roll back applicant",
				slog.String("applicant_id", applicant.ID),
				slog.String("error", rbErr.Error()))
		}
		return recruiter.Applicant{}, storeErr(err, ErrJobNotFound)
	}
	return applicant, nil
}

func (u *applicantUseCaseImpl) UpdateApplicantStatus(
	ctx context.Context,
	id string,
	status recruiter.ApplicantStatus,
) (recruiter.Applicant, error) {
	if err := u.latency.Write(ctx); err != nil {
		return recruiter.Applicant{}, err
	}
	now := u.clock.Now()
	applicant, err := u.applicants.Update(ctx, id, func(a *recruiter.Applicant) error {
		if err := a.SetStatus(status, now); err != nil {
			return invalid(err)
		}
		return nil
	})
	if err != nil {
		return recruiter.Applicant{}, storeErr(err, ErrApplicantNotFound)
	}
	u.logger.Info("Applicant status changed", slog.String("id", id), slog.String("status", string(status)))
	return applicant, nil
}

func (u *applicantUseCaseImpl) UpdateApplicant(
	ctx context.Context,
	id string,
	patch recruiter.ApplicantPatch,
) (recruiter.Applicant, error) {
	if err := u.latency.Write(ctx); err != nil {
		return recruiter.Applicant{}, err
	}
	applicant, err := u.applicants.Update(ctx, id, func(a *recruiter.Applicant) error {
		next, err := a.Apply(patch)
		if err != nil {
			return invalid(err)
		}
		*a = next
		return nil
	})
	if err != nil {
		return recruiter.Applicant{}, storeErr(err, ErrApplicantNotFound)
	}
	return applicant, nil
}

func (u *applicantUseCaseImpl) DeleteApplicant(ctx context.Context, id string) error {
	if err := u.latency.Write(ctx); err != nil {
		return err
	}
	removed, err := u.applicants.Delete(ctx, id)
	if err != nil {
		return storeErr(err, ErrApplicantNotFound)
	}

	// The job may already be gone; the applicant removal still stands.
	if _, err := u.jobs.AdjustApplicants(ctx, removed.JobID, -1); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return storeErr(err, ErrJobNotFound)
	}
	return nil
}
