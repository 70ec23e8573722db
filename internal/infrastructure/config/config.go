package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port            string        `env:"PORT,             default=3000"`
	Env             string        `env:"ENV,              default=development"`
	JWTSecret       string        `env:"JWT_SECRET,       required"`
	JWTTTL          time.Duration `env:"JWT_TTL,          default=24h"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=vidly"`
	// Transactions wraps multi-document writes in a session transaction.
	// Requires a replica set; disable for standalone servers.
	Transactions bool `env:"MONGO_TRANSACTIONS, default=true"`
}

type RedisConfig struct {
	Enabled       bool          `env:"REDIS_ENABLED,   default=true"`
	Addr          string        `env:"REDIS_ADDR,      default=localhost:6379"`
	DB            int           `env:"REDIS_DB,        default=0"`
	ReturnLockTTL time.Duration `env:"RETURN_LOCK_TTL, default=30s"`
}

// IsDevelopment reports whether human-friendly output should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// LoadFrom reads configuration using go-envconfig; pass envconfig.OsLookuper()
// for the process environment.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
