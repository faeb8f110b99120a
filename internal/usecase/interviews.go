package usecase

import (
	"context"
	"log/slog"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/pkg/latency"

	"github.com/google/uuid"
)

type InterviewList struct {
	Interviews []recruiter.Interview
	Total      int
	Scheduled  int
	Completed  int
	Cancelled  int
}

type InterviewUseCase interface {
	GetInterviews(ctx context.Context) (InterviewList, error)
	ScheduleInterview(ctx context.Context, draft recruiter.InterviewDraft) (recruiter.Interview, error)
	UpdateInterview(ctx context.Context, id string, patch recruiter.InterviewPatch) (recruiter.Interview, error)
	CompleteInterview(ctx context.Context, id string, feedback string) (recruiter.Interview, error)
	CancelInterview(ctx context.Context, id string) (recruiter.Interview, error)
	DeleteInterview(ctx context.Context, id string) error
}

type interviewUseCaseImpl struct {
	interviews InterviewRepository
	applicants ApplicantRepository
	jobs       JobRepository
	latency    latency.Simulator
	logger     *slog.Logger
}

func NewInterviewUseCase(
	interviews InterviewRepository,
	applicants ApplicantRepository,
	jobs JobRepository,
	sim latency.Simulator,
	logger *slog.Logger,
) InterviewUseCase {
	return &interviewUseCaseImpl{
		interviews: interviews,
		applicants: applicants,
		jobs:       jobs,
		latency:    sim,
		logger:     logger,
	}
}

func (u *interviewUseCaseImpl) GetInterviews(ctx context.Context) (InterviewList, error) {
	if err := u.latency.Read(ctx); err != nil {
		return InterviewList{}, err
	}
	interviews, err := u.interviews.List(ctx)
	if err != nil {
		return InterviewList{}, storeErr(err, ErrInterviewNotFound)
	}
	return InterviewList{
		Interviews: interviews,
		Total:      len(interviews),
		Scheduled:  recruiter.CountInterviewsByStatus(interviews, recruiter.InterviewScheduled),
		Completed:  recruiter.CountInterviewsByStatus(interviews, recruiter.InterviewCompleted),
		Cancelled:  recruiter.CountInterviewsByStatus(interviews, recruiter.InterviewCancelled),
	}, nil
}

func (u *interviewUseCaseImpl) ScheduleInterview(ctx context.Context, draft recruiter.InterviewDraft) (recruiter.Interview, error) {
	if err := u.latency.Write(ctx); err != nil {
		return recruiter.Interview{}, err
	}
	applicant, err := u.applicants.Get(ctx, draft.ApplicantID)
	if err != nil {
		return recruiter.Interview{}, storeErr(err, ErrApplicantNotFound)
	}
	job, err := u.jobs.Get(ctx, applicant.JobID)
	if err != nil {
		return recruiter.Interview{}, storeErr(err, ErrJobNotFound)
	}

	interview, err := recruiter.NewInterview("interview-"+uuid.NewString(), draft, applicant, job)
	if err != nil {
		return recruiter.Interview{}, invalid(err)
	}
	if err := u.interviews.Create(ctx, interview); err != nil {
		return recruiter.Interview{}, storeErr(err, ErrInterviewNotFound)
	}
	u.logger.Info("Interview scheduled", slog.String("id", interview.ID), slog.String("applicantId", applicant.ID))
	return interview, nil
}

func (u *interviewUseCaseImpl) UpdateInterview(
	ctx context.Context,
	id string,
	patch recruiter.InterviewPatch,
) (recruiter.Interview, error) {
	return u.update(ctx, id, func(iv *recruiter.Interview) error {
		next, err := iv.Apply(patch)
		if err != nil {
			return invalid(err)
		}
		*iv = next
		return nil
	})
}

func (u *interviewUseCaseImpl) CompleteInterview(ctx context.Context, id string, feedback string) (recruiter.Interview, error) {
	return u.update(ctx, id, func(iv *recruiter.Interview) error {
		if err := iv.Complete(feedback); err != nil {
			return conflict(err)
		}
		return nil
	})
}

func (u *interviewUseCaseImpl) CancelInterview(ctx context.Context, id string) (recruiter.Interview, error) {
	return u.update(ctx, id, func(iv *recruiter.Interview) error {
		if err := iv.Cancel(); err != nil {
			return conflict(err)
		}
		return nil
	})
}

func (u *interviewUseCaseImpl) DeleteInterview(ctx context.Context, id string) error {
	if err := u.latency.Write(ctx); err != nil {
		return err
	}
	_, err := u.interviews.Delete(ctx, id)
	return storeErr(err, ErrInterviewNotFound)
}

func (u *interviewUseCaseImpl) update(
	ctx context.Context,
	id string,
	fn func(*recruiter.Interview) error,
) (recruiter.Interview, error) {
	if err := u.latency.Write(ctx); err != nil {
		return recruiter.Interview{}, err
	}
	interview, err := u.interviews.Update(ctx, id, fn)
	if err != nil {
		return recruiter.Interview{}, storeErr(err, ErrInterviewNotFound)
	}
	return interview, nil
}
