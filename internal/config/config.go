package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string `envconfig:"SERVER_PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:"user:password@tcp(localhost:3306)/sportmatch?charset=utf8mb4&parseTime=True&loc=Local"`
	ResetDB     bool   `envconfig:"RESET_DB" default:"false"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`
	RedisPass string `envconfig:"REDIS_PASSWORD"`

	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`

	// AMQPURL is optional; events are dropped when it is empty.
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"sportmatch.events"`

	LogDebug    bool   `envconfig:"LOG_DEBUG" default:"false"`
	SwaggerHost string `envconfig:"SWAGGER_HOST"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

// Load builds Config from the environment, reading an optional .env file first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("load config: JWT_SECRET must not be empty")
	}
	if cfg.JWTExpireMin <= 0 {
		return nil, fmt.Errorf("load config: JWT_EXPIRE_MIN must be positive, got %d", cfg.JWTExpireMin)
	}
	return &cfg, nil
}

// TokenTTL is the lifetime of issued access tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpireMin) * time.Minute
}
