package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.StoreDriver != StoreMongo || cfg.Mongo.Database != "investment_app" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Identity.Mode != IdentityHeader || cfg.Identity.Header != "userId" {
		t.Fatalf("unexpected identity defaults: %+v", cfg.Identity)
	}
	if cfg.Redis.LockTTL != 5*time.Second || cfg.RedisEnabled() {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if len(cfg.CORSAllowOrigins) != 1 || cfg.CORSAllowOrigins[0] != "*" {
		t.Fatalf("expected permissive CORS by default, got %v", cfg.CORSAllowOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORE_DRIVER":       "memory",
		"REDIS_ADDR":         "localhost:6379",
		"IDENTITY_MODE":      "jwt",
		"JWT_SECRET":         "s3cret",
		"JWT_TTL":            "1h",
		"IDENTITY_HEADER":    "X-User-Id",
		"CORS_ALLOW_ORIGINS": "https://app.example.com,http://localhost:3000",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StoreDriver != StoreMemory || !cfg.RedisEnabled() || cfg.Identity.JWTTTL != time.Hour {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowOrigins)
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]struct {
		env  map[string]string
		want string
	}{
		"unknown driver": {map[string]string{"STORE_DRIVER": "oracle"}, "STORE_DRIVER"},
		"unknown mode":   {map[string]string{"IDENTITY_MODE": "cookie"}, "IDENTITY_MODE"},
		"jwt no secret":  {map[string]string{"IDENTITY_MODE": "jwt"}, "JWT_SECRET"},
		"short seed pwd": {map[string]string{"SEED_ON_START": "true", "SEED_ADMIN_PASSWORD": "short"}, "SEED_ADMIN_PASSWORD"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := load(context.Background(), envconfig.MapLookuper(tc.env))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %s, got %v", tc.want, err)
			}
		})
	}
}
