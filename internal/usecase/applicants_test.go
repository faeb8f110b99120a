//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"careerlaunch/internal/domain/recruiter"
	"careerlaunch/internal/infra"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/errs"
	"careerlaunch/internal/pkg/latency"
	"careerlaunch/internal/usecase"
	usecasemock "careerlaunch/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateApplicant_CountFailure(t *testing.T) {
	ctx := context.Background()
	draft := recruiter.ApplicantDraft{JobID: "job-1", Name: "Ann", Email: "ann@example.com"}
	countErr := infra.WrapRepoErr(discard, infra.KindStoreFailure, "failed to adjust applicants", errors.New("disk full"))

	newUseCase := func(t *testing.T) (usecase.ApplicantUseCase, *usecasemock.MockApplicantRepository, *usecasemock.MockJobRepository) {
		ctrl := gomock.NewController(t)
		applicants := usecasemock.NewMockApplicantRepository(ctrl)
		jobs := usecasemock.NewMockJobRepository(ctrl)
		uc := usecase.NewApplicantUseCase(applicants, jobs, latency.None(), clock.NewMockClock(fixedNow), discard)
		return uc, applicants, jobs
	}

	t.Run("removes the stored applicant", func(t *testing.T) {
		uc, applicants, jobs := newUseCase(t)

		var created recruiter.Applicant
		gomock.InOrder(
			jobs.EXPECT().Get(gomock.Any(), "job-1").Return(recruiter.Job{ID: "job-1"}, nil),
			applicants.EXPECT().Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, a recruiter.Applicant) error {
					created = a
					return nil
				}),
			jobs.EXPECT().AdjustApplicants(gomock.Any(), "job-1", 1).Return(recruiter.Job{}, countErr),
			applicants.EXPECT().Delete(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, id string) (recruiter.Applicant, error) {
					assert.Equal(t, created.ID, id)
					return created, nil
				}),
		)

		a, err := uc.CreateApplicant(ctx, draft)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStoreOperationFailed))
		assert.Empty(t, a.ID)
	})

	t.Run("failed removal still reports the count error", func(t *testing.T) {
		uc, applicants, jobs := newUseCase(t)

		jobs.EXPECT().Get(gomock.Any(), "job-1").Return(recruiter.Job{ID: "job-1"}, nil)
		applicants.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		jobs.EXPECT().AdjustApplicants(gomock.Any(), "job-1", 1).Return(recruiter.Job{}, countErr)
		applicants.EXPECT().Delete(gomock.Any(), gomock.Any()).
			Return(recruiter.Applicant{}, errors.New("store offline"))

		_, err := uc.CreateApplicant(ctx, draft)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStoreOperationFailed))
	})
}
