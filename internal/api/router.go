package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/investment-app/portfolio-api/docs"
	"github.com/investment-app/portfolio-api/internal/api/handler"
	"github.com/investment-app/portfolio-api/internal/api/middleware"
	"github.com/investment-app/portfolio-api/internal/core/policy"
	"github.com/investment-app/portfolio-api/internal/core/ports"
)

// Services bundles the use cases exposed over HTTP.
type Services struct {
	Accounts    ports.AccountService
	Investments ports.InvestmentService
	Holdings    ports.HoldingService
}

// Options carries the transport-level collaborators of the router.
// Mongo and Redis are only used by the readiness probe and may be nil.
type Options struct {
	Resolver  ports.IdentityResolver
	Extractor middleware.TokenExtractor
	Mongo     *mongo.Database
	Redis     *redis.Client
	Logger    zerolog.Logger
	// Registry receives the HTTP request metrics and backs /metrics. The
	// default Prometheus registry is used when nil.
	Registry *prometheus.Registry
	// CORSAllowOrigins lists the origins allowed to call the API. Empty
	// means any origin.
	CORSAllowOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(corsConfig(opts.CORSAllowOrigins)))
	e.Use(requestLogger(opts.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(metricsConfig(opts.Registry)))

	// --- Probes and tooling (no identity required) ---
	health := handler.NewHealthHandler(opts.Mongo, opts.Redis)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", metricsHandler(opts.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", middleware.Identity(opts.Resolver, opts.Extractor))
	authz := middleware.Authorize

	// --- Accounts ---
	accounts := handler.NewAccountHandler(svc.Accounts)
	api.POST("/users", accounts.Register, authz(policy.AccountRegister, ""))
	api.GET("/users", accounts.List, authz(policy.AccountList, ""))
	api.GET("/users/:id", accounts.Get, authz(policy.AccountRead, "id"))
	api.PUT("/users/:id", accounts.Update, authz(policy.AccountUpdate, "id"))
	api.DELETE("/users/:id", accounts.Deactivate, authz(policy.AccountDelete, ""))
	api.PATCH("/users/:id/role", accounts.Elevate, authz(policy.AccountElevate, ""))

	// --- Catalog ---
	investments := handler.NewInvestmentHandler(svc.Investments)
	api.GET("/investimentos", investments.List, authz(policy.CatalogList, ""))
	api.GET("/investimentos/:id", investments.Get, authz(policy.CatalogRead, ""))
	api.POST("/investimentos", investments.Create, authz(policy.CatalogCreate, ""))
	api.PUT("/investimentos/:id", investments.Update, authz(policy.CatalogUpdate, ""))
	api.DELETE("/investimentos/:id", investments.Delete, authz(policy.CatalogDelete, ""))

	// --- Holdings (owner scoped) ---
	holdings := handler.NewHoldingHandler(svc.Holdings)
	api.POST("/users/:userId/investimentos", holdings.Create, authz(policy.HoldingCreate, "userId"))
	api.GET("/users/:userId/investimentos", holdings.List, authz(policy.HoldingList, "userId"))
	api.GET("/users/:userId/investimentos/:id", holdings.Get, authz(policy.HoldingRead, "userId"))
	api.PUT("/users/:userId/investimentos/:id", holdings.Update, authz(policy.HoldingUpdate, "userId"))
	api.DELETE("/users/:userId/investimentos/:id", holdings.Delete, authz(policy.HoldingDelete, "userId"))

	return e
}

// requestLogger writes one structured line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil || v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// corsConfig allows the usual REST verbs. Request headers are reflected so the
// identity header and Authorization pass preflight.
func corsConfig(origins []string) echomiddleware.CORSConfig {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
	}
}

func metricsConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "portfolio"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
