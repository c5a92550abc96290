// Package config loads runtime configuration from environment variables
// using go-envconfig.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs bearer tokens. Falling back to a built-in secret
	// would silently break token verification across restarts and
	// deployments, so it is required.
	JWTSecret       string `env:"JWT_SECRET, required"`
	JWTExpirationMS int64  `env:"JWT_EXPIRATION_MS, default=86400000"`

	// AdminPassword overrides the initial "admin" account password
	// created on first start. Leave empty to use the stock default,
	// which is loudly logged as unsafe.
	AdminPassword string `env:"ADMIN_PASSWORD"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=supplychain"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TokenTTL converts the configured expiration from milliseconds into a
// duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpirationMS) * time.Millisecond
}

// Production reports whether the service runs with the production profile.
func (c *Config) Production() bool {
	return c.Env == "production"
}
