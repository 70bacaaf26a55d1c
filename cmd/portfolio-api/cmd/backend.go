package cmd

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/investment-app/portfolio-api/internal/core/ports"
	"github.com/investment-app/portfolio-api/internal/infrastructure/db/memory"
	mongostore "github.com/investment-app/portfolio-api/internal/infrastructure/db/mongo"
	redisstore "github.com/investment-app/portfolio-api/internal/infrastructure/db/redis"
	"github.com/investment-app/portfolio-api/internal/pkg/config"
)

// backend holds the repositories and the connections behind them.
type backend struct {
	accounts    ports.AccountRepository
	investments ports.InvestmentRepository
	holdings    ports.HoldingRepository
	events      ports.HoldingEventRepository

	mongo *mongo.Database
	redis *goredis.Client

	closers []func(ctx context.Context) error
}

func openBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backend, error) {
	b := &backend{}

	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, client.Disconnect)

		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			b.close(ctx, log)
			return nil, err
		}

		b.mongo = db
		b.accounts = mongostore.NewAccountRepository(db)
		b.investments = mongostore.NewInvestmentRepository(db)
		b.holdings = mongostore.NewHoldingRepository(db)
		b.events = mongostore.NewHoldingEventRepository(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	case config.StoreMemory:
		store := memory.NewStore()
		b.accounts = memory.NewAccountRepository(store)
		b.investments = memory.NewInvestmentRepository(store)
		b.holdings = memory.NewHoldingRepository(store)
		b.events = memory.NewHoldingEventRepository(store)
		log.Warn().Msg("using in-memory store; data is lost on exit")

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.RedisEnabled() {
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			b.close(ctx, log)
			return nil, err
		}
		b.redis = client
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	return b, nil
}

func (b *backend) close(ctx context.Context, log zerolog.Logger) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			log.Error().Err(err).Msg("closing backend")
		}
	}
}
