// Package persistence wires the document store backend selected by
// configuration and the repositories built on it.
package persistence

import (
	"context"
	"log/slog"

	"cheeserater/config"
	"cheeserater/internal/domain/constants"
	"cheeserater/internal/domain/lifecycle"
	"cheeserater/internal/domain/repository"
	"cheeserater/internal/errors"
	"cheeserater/internal/infra/persistence/document"
	"cheeserater/internal/infra/persistence/memory"
	"cheeserater/internal/infra/persistence/postgres"
	redisstore "cheeserater/internal/infra/persistence/redis"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the KVStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKVStore creates the backend named by store.driver.
func NewKVStore(params StoreParams) (repository.KVStore, error) {
	cfg := params.Config
	logger := params.Logger.With(slog.String("store_driver", cfg.Store.Driver))

	var store repository.KVStore

	switch cfg.Store.Driver {
	case constants.StoreDriverMemory, "":
		logger.Warn("Using in-memory document store, data is lost on restart")

		store = memory.NewKVStore()

	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: cfg, Logger: params.Logger})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL document store")

		store = postgres.NewKVStore(db)

	case constants.StoreDriverRedis:
		client, err := redisstore.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
		})
		logger.Info("Using Redis document store", slog.String("addr", cfg.Redis.Addr))

		store = redisstore.NewKVStore(client, cfg.Store.KeyPrefix, params.Logger)

	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing document store")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the store and the document repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewKVStore,
		document.NewKeys,
		func() *document.Locks { return &document.Locks{} },
		document.NewCatalogRepository,
		document.NewReviewRepository,
		document.NewProfileRepository,
	),
)
