// Package config manages environment variables.
//
// It reads variables from the `.env` file (if present) and the process
// environment, loads them on top of compiled defaults into structured Go
// types, and validates that required values are present so they can be
// reused across the application runtime.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment
	// before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// ServiceName labels logs, traces and the APM application.
const ServiceName = "items-api"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`

	// APIURL is the client-facing base URL of this API, advertised on /api.
	APIURL string `koanf:"api_url" validate:"required,url"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// ConnMaxLifetime and ConnMaxIdleTime are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required,min=1,max=65535"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required,min=1"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required,min=1"`
}

// envKeys maps the recognized environment variables onto koanf key paths.
// Anything not listed here is ignored.
var envKeys = map[string]string{
	"APP_ENV":  "primary.env",
	"NODE_ENV": "primary.env",
	"API_URL":  "primary.api_url",

	"PORT":                 "server.port",
	"SERVER_READ_TIMEOUT":  "server.read_timeout",
	"SERVER_WRITE_TIMEOUT": "server.write_timeout",
	"SERVER_IDLE_TIMEOUT":  "server.idle_timeout",
	"CORS_ALLOWED_ORIGINS": "server.cors_allowed_origins",

	"DB_HOST":               "database.host",
	"DB_PORT":               "database.port",
	"DB_USER":               "database.user",
	"DB_PASSWORD":           "database.password",
	"DB_NAME":               "database.name",
	"DB_SSL_MODE":           "database.ssl_mode",
	"DB_MAX_OPEN_CONNS":     "database.max_open_conns",
	"DB_MAX_IDLE_CONNS":     "database.max_idle_conns",
	"DB_CONN_MAX_LIFETIME":  "database.conn_max_lifetime",
	"DB_CONN_MAX_IDLE_TIME": "database.conn_max_idle_time",

	"LOG_LEVEL":                "observability.logging.level",
	"LOG_FORMAT":               "observability.logging.format",
	"LOG_SLOW_QUERY_THRESHOLD": "observability.logging.slow_query_threshold",

	"NEW_RELIC_LICENSE_KEY":                 "observability.new_relic.license_key",
	"NEW_RELIC_APP_LOG_FORWARDING_ENABLED":  "observability.new_relic.app_log_forwarding_enabled",
	"NEW_RELIC_DISTRIBUTED_TRACING_ENABLED": "observability.new_relic.distributed_tracing_enabled",
	"NEW_RELIC_DEBUG_LOGGING":               "observability.new_relic.debug_logging",

	"HEALTH_CHECKS_ENABLED": "observability.health_checks.enabled",
	"HEALTH_CHECKS_TIMEOUT": "observability.health_checks.timeout",
}

// envValue maps a raw environment variable onto its koanf key and value.
// Returning an empty key drops the variable, so blank values keep their
// defaults. APP_ENV wins over NODE_ENV.
func envValue(name, value string) (string, interface{}) {
	key, ok := envKeys[name]
	if !ok || strings.TrimSpace(value) == "" {
		return "", nil
	}
	if name == "NODE_ENV" && strings.TrimSpace(os.Getenv("APP_ENV")) != "" {
		return "", nil
	}
	if key == "server.cors_allowed_origins" {
		return key, splitList(value)
	}
	return key, strings.TrimSpace(value)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DefaultConfig returns the configuration used when no environment
// overrides are present. The database defaults match the docker-compose
// setup the frontend ships with.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env:    "development",
			APIURL: "http://localhost:5000",
		},
		Server: ServerConfig{
			Port:               "5000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "devops_user",
			Password:        "devops_password",
			Name:            "devops_app",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 60,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it, and returns the resulting config.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue("", ".", envValue), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Keys absent from the environment keep their default values.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are derived, never configured.
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
