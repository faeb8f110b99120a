package components

import (
	"context"
	"log/slog"

	"careerlaunch/internal/infra/delivery"
	"careerlaunch/internal/pkg/config"
	"careerlaunch/internal/usecase"

	"go.uber.org/fx"
)

var DeliveryModule = fx.Module("delivery",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) delivery.Channel {
				return delivery.NewEmailChannel(cfg.SMTP, cfg.Notify, logger)
			},
			fx.ResultTags(`group:"channels"`),
		),
		fx.Annotate(
			func(cfg config.Config, logger *slog.Logger) delivery.Channel {
				return delivery.NewSMSChannel(cfg.Notify.SMSTo, logger)
			},
			fx.ResultTags(`group:"channels"`),
		),
		fx.Annotate(
			func(logger *slog.Logger) delivery.Channel {
				return delivery.NewInAppChannel(logger)
			},
			fx.ResultTags(`group:"channels"`),
		),
		fx.Annotate(
			func(channels []delivery.Channel, cfg config.Config, logger *slog.Logger) *delivery.Dispatcher {
				return delivery.NewDispatcher(channels, cfg.Notify, logger)
			},
			fx.ParamTags(`group:"channels"`),
		),
		func(d *delivery.Dispatcher) usecase.Deliverer { return d },
	),
	fx.Invoke(runDigest),
)

// runDigest flushes digests in the background and drains in-flight sends on stop.
func runDigest(lc fx.Lifecycle, d *delivery.Dispatcher, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				d.Digest().Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				logger.Warn("digest flush did not finish before shutdown")
				return stopCtx.Err()
			}
			d.Wait()
			return nil
		},
	})
}
