// Package config loads the service configuration from ESCROWWATCH_* environment variables.
package config

import (
	"time"

	"github.com/gabapcia/escrowwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/time/rate"
)

const prefix = "ESCROWWATCH"

// Provider holds the settings of one verification provider. A provider with
// an empty BaseURL is not configured.
type Provider struct {
	BaseURL   string  `split_words:"true" validate:"omitempty,url"`
	APIKey    string  `split_words:"true"`
	RateLimit float64 `split_words:"true" validate:"gte=0"` // requests per second, 0 disables throttling
	RateBurst int     `split_words:"true" default:"1" validate:"gte=1"`
}

// Configured reports whether the provider has an endpoint.
func (p Provider) Configured() bool { return p.BaseURL != "" }

// Limit returns the provider rate limit, or rate.Inf when throttling is disabled.
func (p Provider) Limit() rate.Limit {
	if p.RateLimit <= 0 {
		return rate.Inf
	}
	return rate.Limit(p.RateLimit)
}

// Redis holds the connection settings of the release guard and outcome store.
// An empty Addr disables Redis.
type Redis struct {
	Addr       string        `split_words:"true"`
	Username   string        `split_words:"true"`
	Password   string        `split_words:"true"`
	DB         int           `validate:"gte=0"`
	OutcomeTTL time.Duration `split_words:"true" default:"720h" validate:"gte=0"` // 0 keeps outcomes forever
}

// Enabled reports whether a Redis address was given.
func (r Redis) Enabled() bool { return r.Addr != "" }

// Release holds the settings of the fund release mechanism.
type Release struct {
	RPCURL          string        `envconfig:"RPC_URL" validate:"required,url"`
	ContractAddress string        `split_words:"true" validate:"required"`
	Timeout         time.Duration `split_words:"true" default:"30s" validate:"gt=0"`
	RetryAttempts   uint          `split_words:"true" default:"1" validate:"min=1"`
	RetryDelay      time.Duration `split_words:"true" default:"1s" validate:"gt=0"`
	RetryMaxDelay   time.Duration `split_words:"true" default:"10s" validate:"gtefield=RetryDelay"`
	ClaimTTL        time.Duration `split_words:"true" default:"10m" validate:"gt=0"`
}

// Config is the full service configuration.
type Config struct {
	LogLevel         string        `split_words:"true" default:"info" validate:"oneof=debug info warn error"`
	ServiceName      string        `split_words:"true" default:"escrowwatch" validate:"required"`
	TelemetryEnabled bool          `split_words:"true" default:"false"`
	HTTPAddr         string        `envconfig:"HTTP_ADDR" default:":8000" validate:"required"`
	PollingInterval  time.Duration `split_words:"true" default:"5m" validate:"gt=0"`
	MaxWatches       int           `split_words:"true" default:"10000" validate:"gt=0"`
	ProviderTimeout  time.Duration `split_words:"true" default:"10s" validate:"gt=0"`

	Shipping Provider
	Document Provider
	Email    Provider
	Oracle   Provider

	Release Release
	Redis   Redis
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
