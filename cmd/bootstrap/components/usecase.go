package components

import (
	"careerlaunch/internal/pkg/clock"
	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/pkg/latency"
	"careerlaunch/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewNotificationUseCase,
		usecase.NewJobUseCase,
		usecase.NewApplicantUseCase,
		usecase.NewEmailTemplateUseCase,
		usecase.NewInterviewUseCase,
		usecase.NewMetricsUseCase,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) latency.Simulator {
		return latency.NewSimulator(cfg.Simulation)
	},
)
