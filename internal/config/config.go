package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	LogDir         string
	Environment    string
	ServiceName    string
	Version        string
	TrustedProxies []string

	// State
	SeedFile        string
	AdminAPIKeys    []string
	CheckoutAPIKeys []string
	StorageAPIKeys  []string

	// Store and storage policy
	StoreLockTimeout        time.Duration
	StorageRentalPeriod     time.Duration
	StorageGateRenewRelease bool
	StorageSweepInterval    time.Duration

	// Alerts
	AlertCooldown       time.Duration
	DiscordWebhookID    string
	DiscordWebhookToken string

	// Workers
	WorkerCount     int
	WorkerQueueSize int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:      getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:         getEnv(EnvLogDir, DefaultLogDir),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),

		SeedFile:        getEnv(EnvSeedFile, ""),
		AdminAPIKeys:    getEnvAsList(EnvAdminAPIKeys),
		CheckoutAPIKeys: getEnvAsList(EnvCheckoutAPIKeys),
		StorageAPIKeys:  getEnvAsList(EnvStorageAPIKeys),

		StoreLockTimeout:        getEnvAsDuration(EnvStoreLockTimeout, DefaultStoreLockTimeout),
		StorageRentalPeriod:     getEnvAsDuration(EnvStorageRentalPeriod, DefaultStorageRentalPeriod),
		StorageGateRenewRelease: getEnvAsBool(EnvStorageGateRenewRelease, false),
		StorageSweepInterval:    getEnvAsDuration(EnvStorageSweepInterval, DefaultStorageSweepInterval),

		AlertCooldown:       getEnvAsDuration(EnvAlertCooldown, DefaultAlertCooldown),
		DiscordWebhookID:    getEnv(EnvDiscordWebhookID, ""),
		DiscordWebhookToken: getEnv(EnvDiscordWebhookToken, ""),

		WorkerCount:     getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid %s value: %d", EnvPort, c.Port)
	}
	if c.AdminAPIKeys == nil && c.SeedFile == "" {
		return fmt.Errorf("%s or %s must be set so at least one admin key exists", EnvAdminAPIKeys, EnvSeedFile)
	}
	if c.StorageRentalPeriod <= 0 {
		return fmt.Errorf("%s must be positive", EnvStorageRentalPeriod)
	}
	if c.StorageSweepInterval <= 0 {
		return fmt.Errorf("%s must be positive", EnvStorageSweepInterval)
	}
	if (c.DiscordWebhookID == "") != (c.DiscordWebhookToken == "") {
		return fmt.Errorf("%s and %s must be set together", EnvDiscordWebhookID, EnvDiscordWebhookToken)
	}
	return nil
}

// DiscordEnabled reports whether alerts go to a Discord webhook
func (c *Config) DiscordEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// Addr is the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value when it
// is unset or empty
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns defaultValue when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration accepts Go durations ("90s", "720h")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping blanks. It returns
// nil when nothing remains.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
