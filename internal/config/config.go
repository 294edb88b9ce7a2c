// Package config centralizes application configuration into typed structs.
// Defaults cover local use; every value can be overridden through the
// environment (a .env file is honored when present).
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config is the top-level configuration container.
type Config struct {
	Server   ServerConfig
	Registry RegistryConfig
	CLI      CLIConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RegistryConfig names the three record collections. The names are display
// text only — they appear in banners and log fields, never in lookups.
type RegistryConfig struct {
	DriverListName    string
	PassengerListName string
	RideListName      string
}

// CLIConfig controls the interactive shell.
type CLIConfig struct {
	// MaxPromptAttempts bounds the retry loop on each validated prompt.
	// After this many rejected inputs the whole add flow aborts.
	MaxPromptAttempts int
}

// LoggingConfig selects the zap log level.
type LoggingConfig struct {
	Level string
}

// NewDefaultConfig returns a Config populated with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Registry: RegistryConfig{
			DriverListName:    "Drivers",
			PassengerListName: "Passengers",
			RideListName:      "Rides",
		},
		CLI: CLIConfig{
			MaxPromptAttempts: 3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds a Config from defaults overridden by the environment.
func Load() *Config {
	_ = godotenv.Load(".env")

	cfg := NewDefaultConfig()

	cfg.Server.Port = cast.ToString(getOrReturnDefault("SERVER_PORT", cfg.Server.Port))
	cfg.Server.ReadTimeout = cast.ToDuration(getOrReturnDefault("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout))
	cfg.Server.WriteTimeout = cast.ToDuration(getOrReturnDefault("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout))

	cfg.Registry.DriverListName = cast.ToString(getOrReturnDefault("DRIVER_LIST_NAME", cfg.Registry.DriverListName))
	cfg.Registry.PassengerListName = cast.ToString(getOrReturnDefault("PASSENGER_LIST_NAME", cfg.Registry.PassengerListName))
	cfg.Registry.RideListName = cast.ToString(getOrReturnDefault("RIDE_LIST_NAME", cfg.Registry.RideListName))

	cfg.CLI.MaxPromptAttempts = cast.ToInt(getOrReturnDefault("CLI_MAX_PROMPT_ATTEMPTS", cfg.CLI.MaxPromptAttempts))

	cfg.Logging.Level = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", cfg.Logging.Level))

	return cfg
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
