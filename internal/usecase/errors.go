package usecase

import (
	"errors"

	"careerlaunch/internal/infra"
	"careerlaunch/internal/pkg/errs"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrJobNotFound           = errors.New("job not found")
	ErrApplicantNotFound     = errors.New("applicant not found")
	ErrEmailTemplateNotFound = errors.New("email template not found")
	ErrInterviewNotFound     = errors.New("interview not found")

	ErrDefaultTemplateUndeletable = errors.New("default templates cannot be deleted")
)

// notFound tags err with the operation's sentinel and the shared not-found class.
func notFound(err, sentinel error) error {
	return errs.Mark(errs.Mark(errs.Wrap(err, sentinel.Error()), sentinel), errs.ErrNotFound)
}

func invalid(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

func conflict(err error) error {
	return errs.Mark(err, errs.ErrConflict)
}

// storeErr classifies an error coming back from a repository. sentinel is
// used for missing records.
func storeErr(err, sentinel error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return notFound(err, sentinel)
	case infra.IsKind(err, infra.KindStoreFailure), infra.IsKind(err, infra.KindEncodeFailed):
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return err
}
