package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/investment-app/portfolio-api/internal/api"
	"github.com/investment-app/portfolio-api/internal/api/middleware"
	"github.com/investment-app/portfolio-api/internal/core/ports"
	"github.com/investment-app/portfolio-api/internal/core/service"
	"github.com/investment-app/portfolio-api/internal/core/validation"
	"github.com/investment-app/portfolio-api/internal/infrastructure/auth"
	redisstore "github.com/investment-app/portfolio-api/internal/infrastructure/db/redis"
	"github.com/investment-app/portfolio-api/internal/infrastructure/queue"
	"github.com/investment-app/portfolio-api/internal/pkg/config"
	"github.com/investment-app/portfolio-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		b, err := openBackend(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer b.close(context.WithoutCancel(ctx), log)

		// The serializer outlives the signal so in-flight requests can drain.
		serializerCtx, stopSerializer := context.WithCancel(context.WithoutCancel(ctx))
		defer stopSerializer()

		var serializer ports.Serializer
		if b.redis != nil {
			serializer = redisstore.NewLocker(b.redis, cfg.Redis.LockTTL, logger.Component("lock"))
		} else {
			dispatcher := queue.NewDispatcher(logger.Component("serializer"))
			dispatcher.Start(serializerCtx)
			serializer = dispatcher
		}

		identities := service.NewIdentityResolver(b.accounts, cfg.Identity.CacheSize, cfg.Identity.CacheTTL, logger.Component("identity"))
		var resolver ports.IdentityResolver = identities
		extractor := middleware.HeaderToken(cfg.Identity.Header)
		if cfg.Identity.Mode == config.IdentityJWT {
			resolver = auth.NewJWTResolver(cfg.Identity.JWTSecret, identities)
			extractor = middleware.BearerToken()
		}

		if cfg.Seed.OnStart {
			if err := runSeed(ctx, b); err != nil {
				return err
			}
		}

		v := validation.New()
		e := api.NewRouter(api.Services{
			Accounts:    service.NewAccountService(b.accounts, v, serializer, identities, logger.Component("accounts")),
			Investments: service.NewInvestmentService(b.investments, v, serializer, logger.Component("investments")),
			Holdings:    service.NewHoldingService(b.holdings, b.events, b.accounts, b.investments, v, serializer, logger.Component("holdings")),
		}, api.Options{
			Resolver:         resolver,
			Extractor:        extractor,
			Mongo:            b.mongo,
			Redis:            b.redis,
			Logger:           logger.Component("http"),
			CORSAllowOrigins: cfg.CORSAllowOrigins,
		})

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Str("identity", cfg.Identity.Mode).Msg("portfolio api listening")
			if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
		stopSerializer()
		return nil
	},
}
