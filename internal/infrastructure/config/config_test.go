package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("port: want 3000, got %q", cfg.Port)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Errorf("jwt ttl: want 24h, got %v", cfg.JWTTTL)
	}
	if cfg.Mongo.Database != "vidly" || !cfg.Mongo.Transactions {
		t.Errorf("unexpected mongo config: %+v", cfg.Mongo)
	}
	if !cfg.Redis.Enabled || cfg.Redis.ReturnLockTTL != 30*time.Second {
		t.Errorf("unexpected redis config: %+v", cfg.Redis)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development by default")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":         "s3cret",
		"PORT":               "8080",
		"ENV":                "production",
		"MONGO_TRANSACTIONS": "false",
		"REDIS_ENABLED":      "false",
		"JWT_TTL":            "1h",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.IsDevelopment() {
		t.Errorf("unexpected server config: %+v", cfg)
	}
	if cfg.Mongo.Transactions || cfg.Redis.Enabled {
		t.Error("expected transactions and redis disabled")
	}
	if cfg.JWTTTL != time.Hour {
		t.Errorf("jwt ttl: want 1h, got %v", cfg.JWTTTL)
	}
}

func TestLoadFrom_RequiresSecret(t *testing.T) {
	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}
