package bootstrap

import (
	"context"

	"receipt-points/internal/infra/db"
	"receipt-points/internal/infra/store"
	"receipt-points/internal/pkg/config"
	"receipt-points/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewReceiptStore,
	),
)

// NewReceiptStore selects the backend from config. The in-memory store is
// the default; STORE_DRIVER=postgres swaps in the persistent one without
// touching validation or scoring.
func NewReceiptStore(lc fx.Lifecycle, cfg config.Config) (shared.ReceiptStore, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		return store.NewMemoryReceiptStore(), nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	pg := store.NewPostgresReceiptStore(pool)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return pg.EnsureSchema(ctx)
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pg, nil
}
