// Package config manages environment variables.
//
// It reads variables from the process environment (and the `.env` file
// when present), loads them into structured Go types and validates that
// required values are present so the service fails fast on bad config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into the Config struct tree.
//   - Validate required values.
//   - Provide defaults for optional blocks (observability, integration sender).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before any read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from every variable name before it is mapped.
//
// Nested keys use "." as delimiter, e.g.
// BOARDHUB_SERVER.PORT -> server.port -> Config.Server.Port
const EnvPrefix = "BOARDHUB_"

// ServiceName tags logs, traces and outgoing email.
const ServiceName = "boardhub"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected by LoadConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// "local" enables SQL statement logging.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the allowed requests per second per client IP.
	// Zero disables rate limiting.
	RateLimit      float64 `koanf:"rate_limit" validate:"gte=0"`
	RateLimitBurst int     `koanf:"rate_limit_burst" validate:"gte=0"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port"; it backs both the health check and the job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig controls Clerk authentication on the member routes.
// The secret key is only required when Enabled is set.
type AuthConfig struct {
	Enabled   bool   `koanf:"enabled"`
	SecretKey string `koanf:"secret_key" validate:"required_if=Enabled true"`
}

// IntegrationConfig holds third-party API credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
	EmailFrom    string `koanf:"email_from"`
}

// DefaultEmailFrom is used when integration.email_from is not set.
const DefaultEmailFrom = "Boardhub <notifications@resend.dev>"

// listKeys are comma-separated in the environment.
var listKeys = map[string]struct{}{
	"server.cors_allowed_origins":         {},
	"observability.health_checks.checks": {},
}

// splitList splits a comma-separated value, trimming blanks and dropping
// empty items.
func splitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// LoadConfig loads configuration from environment variables, validates it
// and applies defaults.
//
// Behavior:
//   - Reads variables prefixed with BOARDHUB_, using "." for nesting
//     (BOARDHUB_SERVER.PORT -> server.port)
//   - Splits comma-separated list values
//   - Unmarshals into Config and validates the required blocks
//   - Injects the default observability block when none was set
//   - Forces the observability service name and environment
func LoadConfig() (*Config, error) {
	// "." is the key path delimiter: server.port -> Config.Server.Port.
	k := koanf.New(".")

	// ProviderWithValue receives every variable carrying EnvPrefix:
	//   - the key is stripped of the prefix and lowercased to match koanf tags
	//   - list-valued keys are split on "," so they unmarshal into []string
	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if _, ok := listKeys[key]; ok {
			return key, splitList(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal follows the koanf struct tags; nested blocks come from the
	// dotted keys.
	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// Fail fast on missing required values before anything connects.
	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Observability is optional; inject defaults when no key was set.
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary block so
	// logs and traces stay consistent.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	if mainConfig.Integration.EmailFrom == "" {
		mainConfig.Integration.EmailFrom = DefaultEmailFrom
	}

	return mainConfig, nil
}
