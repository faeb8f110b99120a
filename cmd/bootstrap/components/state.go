package components

import (
	"context"
	"log/slog"

	"careerlaunch/internal/infra/seed"
	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/state"
	"careerlaunch/internal/usecase"

	"go.uber.org/fx"
)

var StateModule = fx.Module("state",
	fx.Provide(
		state.NewNotifications,
		func(
			jobs usecase.JobUseCase,
			applicants usecase.ApplicantUseCase,
			templates usecase.EmailTemplateUseCase,
			interviews usecase.InterviewUseCase,
			metrics usecase.MetricsUseCase,
			notifications *state.Notifications,
			cfg config.Config,
			logger *slog.Logger,
		) *state.Recruiter {
			return state.NewRecruiter(state.RecruiterDeps{
				Jobs:       jobs,
				Applicants: applicants,
				Templates:  templates,
				Interviews: interviews,
				Metrics:    metrics,
				Notifier:   notifications,
			}, cfg, logger)
		},
	),
	fx.Invoke(startState),
)

// startState seeds the sample data when enabled, loads both containers and
// keeps the dashboard metrics fresh while the app runs.
func startState(
	lc fx.Lifecycle,
	cfg config.Config,
	seeder *seed.Seeder,
	notifications *state.Notifications,
	recruiter *state.Recruiter,
	logger *slog.Logger,
) {
	var stopPolling func()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Seed.SampleData {
				seeded, err := seeder.SeedIfAbsent(ctx)
				if err != nil {
					return err
				}
				if len(seeded) > 0 {
					logger.Info("Sample data seeded", "collections", seeded)
				}
			}
			if err := notifications.Init(ctx); err != nil {
				return err
			}
			if err := recruiter.Init(ctx); err != nil {
				logger.Warn("Recruiter data not fully loaded", "error", err)
			}
			if every := cfg.Dashboard.MetricsPollInterval; every > 0 {
				stopPolling = recruiter.StartMetricsPolling(context.Background(), every)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			if stopPolling != nil {
				stopPolling()
			}
			return nil
		},
	})
}
