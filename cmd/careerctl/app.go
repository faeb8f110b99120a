package main

import (
	"context"
	"fmt"
	"log/slog"

	"careerlaunch/internal/handler/middleware"
	"careerlaunch/internal/infra/delivery"
	"careerlaunch/internal/infra/kvstore"
	"careerlaunch/internal/infra/repository"
	"careerlaunch/internal/infra/seed"
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/pkg/latency"
	"careerlaunch/internal/state"
	"careerlaunch/internal/usecase"
)

// app holds what the commands need. It is built once per invocation.
type app struct {
	cfg           config.Config
	logger        *slog.Logger
	store         kvstore.Store
	dispatcher    *delivery.Dispatcher
	seeder        *seed.Seeder
	metrics       usecase.MetricsUseCase
	notifications *state.Notifications
}

type appKey struct{}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	// The CLI never waits on artificial latency.
	cfg.Simulation.Enabled = false

	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	store, err := kvstore.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return assemble(cfg, logger, store, []delivery.Channel{
		delivery.NewEmailChannel(cfg.SMTP, cfg.Notify, logger),
		delivery.NewSMSChannel(cfg.Notify.SMSTo, logger),
		delivery.NewInAppChannel(logger),
	}), nil
}

func assemble(cfg config.Config, logger *slog.Logger, store kvstore.Store, channels []delivery.Channel) *app {
	clk := clock.NewRealClock()
	sim := latency.NewSimulator(cfg.Simulation)

	jobs := repository.NewJobRepository(store, logger)
	applicants := repository.NewApplicantRepository(store, logger)
	templates := repository.NewEmailTemplateRepository(store, logger)
	interviews := repository.NewInterviewRepository(store, logger)

	dispatcher := delivery.NewDispatcher(channels, cfg.Notify, logger)

	notifyUC := usecase.NewNotificationUseCase(
		repository.NewNotificationRepository(store, logger),
		repository.NewPreferencesRepository(store, logger),
		dispatcher,
		sim,
		clk,
		logger,
	)

	return &app{
		cfg:           cfg,
		logger:        logger,
		store:         store,
		dispatcher:    dispatcher,
		seeder:        seed.NewSeeder(jobs, applicants, templates, interviews, logger),
		metrics:       usecase.NewMetricsUseCase(jobs, applicants, sim, clk),
		notifications: state.NewNotifications(notifyUC, logger),
	}
}

// Close sends every queued digest and waits for in-flight deliveries before
// releasing the store. The process does not outlive the command, so daily and
// weekly batches go out now.
func (a *app) Close() error {
	a.dispatcher.Digest().FlushAll(context.Background())
	a.dispatcher.Wait()
	return a.store.Close()
}

func appFrom(ctx context.Context) *app {
	a, _ := ctx.Value(appKey{}).(*app)
	return a
}
