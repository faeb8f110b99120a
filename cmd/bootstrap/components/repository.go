package components

import (
	"careerlaunch/internal/infra/repository"
	"careerlaunch/internal/infra/seed"
	"careerlaunch/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(usecase.NotificationRepository)),
		),
		fx.Annotate(
			repository.NewPreferencesRepository,
			fx.As(new(usecase.PreferencesRepository)),
		),
		// Recruiter repositories are also needed concretely by the seeder.
		repository.NewJobRepository,
		repository.NewApplicantRepository,
		repository.NewEmailTemplateRepository,
		repository.NewInterviewRepository,
		func(r *repository.JobRepository) usecase.JobRepository { return r },
		func(r *repository.ApplicantRepository) usecase.ApplicantRepository { return r },
		func(r *repository.EmailTemplateRepository) usecase.EmailTemplateRepository { return r },
		func(r *repository.InterviewRepository) usecase.InterviewRepository { return r },
		seed.NewSeeder,
	),
)
