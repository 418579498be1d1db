// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, applies defaults and
// validates the result so it can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate values so the app fails fast on bad config.
//   - Provide sane defaults for every block, so a bare `go run` works locally.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix ITEMECHO_.

	Keys are normalized: prefix removed, lowercased, and a double underscore
	marks a nesting level, so single underscores can stay inside key names:

	  ITEMECHO_SERVER__READ_TIMEOUT          -> server.read_timeout
	  ITEMECHO_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level

	Values containing commas are split into lists (CORS origins).
*/

const (
	// EnvPrefix is the prefix every configuration variable carries.
	EnvPrefix = "ITEMECHO_"

	// ServiceName tags logs and APM data.
	ServiceName = "items-echo"
)

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`

	// Debug switches echo into debug mode (indented JSON, verbose errors).
	// Meant for local runs only.
	Debug bool `koanf:"debug"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RateLimit is the per-IP request rate (requests/second). 0 disables it.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`

	// TrustProxyHeaders takes the client IP from X-Forwarded-For when the
	// request arrives from a private or loopback address. Off by default:
	// clients could otherwise pick their own IP.
	TrustProxyHeaders bool `koanf:"trust_proxy_headers"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env:   "development",
			Debug: false,
		},
		Server: ServerConfig{
			Port:               "5000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit:          0,
			TrustProxyHeaders:  false,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix ITEMECHO_
//   - Unmarshals into a Config pre-populated with defaults, so unset keys keep them
//   - Validates struct tags, then the observability block's own rules
//   - Forces the observability service name and environment
func LoadConfig() (*Config, error) {
	// "." is the key-path delimiter koanf uses for nesting.
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key string, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")

		if strings.Contains(value, ",") {
			parts := strings.Split(value, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return key, parts
		}

		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal leaves fields that have no matching key untouched, which is
	// what lets the defaults survive.
	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
