package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"

	IdentityHeader = "header"
	IdentityJWT    = "jwt"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	StoreDriver string `env:"STORE_DRIVER, default=mongo"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Identity IdentityConfig
	Seed     SeedConfig

	// CORSAllowOrigins is a comma-separated list; "*" allows any origin.
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS, default=*"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=investment_app"`
}

// RedisConfig enables the distributed record lock when Addr is set.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	PoolSize int           `env:"REDIS_POOL_SIZE, default=20"`
	LockTTL  time.Duration `env:"LOCK_TTL,        default=5s"`
}

type IdentityConfig struct {
	Mode      string        `env:"IDENTITY_MODE,       default=header"`
	Header    string        `env:"IDENTITY_HEADER,     default=userId"`
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL,             default=24h"`
	CacheSize int           `env:"IDENTITY_CACHE_SIZE, default=1024"`
	CacheTTL  time.Duration `env:"IDENTITY_CACHE_TTL,  default=30s"`
}

type SeedConfig struct {
	OnStart       bool   `env:"SEED_ON_START,       default=false"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@investmentapp.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123456"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case StoreMemory, StoreMongo:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMemory, StoreMongo, c.StoreDriver))
	}

	switch c.Identity.Mode {
	case IdentityHeader:
		if c.Identity.Header == "" {
			errs = append(errs, errors.New("IDENTITY_HEADER must not be empty"))
		}
	case IdentityJWT:
		if c.Identity.JWTSecret == "" {
			errs = append(errs, errors.New("JWT_SECRET is required when IDENTITY_MODE=jwt"))
		}
	default:
		errs = append(errs, fmt.Errorf("IDENTITY_MODE must be %q or %q, got %q", IdentityHeader, IdentityJWT, c.Identity.Mode))
	}

	if c.Seed.OnStart && len(c.Seed.AdminPassword) < 8 {
		errs = append(errs, errors.New("SEED_ADMIN_PASSWORD must have at least 8 characters"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// RedisEnabled reports whether the distributed lock should be used.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}
