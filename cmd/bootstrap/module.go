package bootstrap

import (
	"careerlaunch/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	components.RepositoryModule,
	components.DeliveryModule,
	components.UseCaseModule,
	components.StateModule,
	components.HandlerModule,
)
