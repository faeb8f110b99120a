package bootstrap

import (
	"context"
	"log/slog"

	"careerlaunch/internal/infra/kvstore"
	"careerlaunch/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Store, error) {
	store, err := kvstore.Open(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
