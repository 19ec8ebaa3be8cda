// Package config loads server configuration from the environment.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every knob the server binaries read. Values come from
// GYMD_-prefixed environment variables.
type Config struct {
	// HTTPAddr is the listen address for the API server
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// RedisAddr and RedisPassword locate the document store
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// JWTSecret signs issued tokens
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// TokenTTL bounds the lifetime of issued tokens
	TokenTTL time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	// AMQPURL enables booking event publishing when set
	AMQPURL string `envconfig:"AMQP_URL"`

	// EventExchange is the topic exchange booking events go to
	EventExchange string `envconfig:"EVENT_EXCHANGE" default:"gymd.events"`

	// AllowOrigins configures CORS for browser clients
	AllowOrigins []string `envconfig:"ALLOW_ORIGINS" default:"*"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("gymd", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
