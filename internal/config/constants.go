package config

import "time"

// Environment variable keys
const (
	EnvSchemaVersion = "ENV_SCHEMA_VERSION"

	EnvPort           = "PORT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogDir         = "LOG_DIR"
	EnvEnvironment    = "ENVIRONMENT"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvTrustedProxies = "TRUSTED_PROXIES"

	EnvSeedFile        = "SEED_FILE"
	EnvAdminAPIKeys    = "ADMIN_API_KEYS"
	EnvCheckoutAPIKeys = "CHECKOUT_API_KEYS"
	EnvStorageAPIKeys  = "STORAGE_API_KEYS"

	EnvStoreLockTimeout        = "STORE_LOCK_TIMEOUT"
	EnvStorageRentalPeriod     = "STORAGE_RENTAL_PERIOD"
	EnvStorageGateRenewRelease = "STORAGE_GATE_RENEW_RELEASE"
	EnvStorageSweepInterval    = "STORAGE_SWEEP_INTERVAL"

	EnvAlertCooldown       = "ALERT_COOLDOWN"
	EnvDiscordWebhookID    = "DISCORD_WEBHOOK_ID"
	EnvDiscordWebhookToken = "DISCORD_WEBHOOK_TOKEN"

	EnvWorkerCount     = "WORKER_COUNT"
	EnvWorkerQueueSize = "WORKER_QUEUE_SIZE"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "makeserver"
	DefaultVersion     = "dev"

	DefaultStoreLockTimeout     = 2 * time.Second
	DefaultStorageRentalPeriod  = 30 * 24 * time.Hour
	DefaultStorageSweepInterval = time.Hour
	DefaultAlertCooldown        = 10 * time.Minute

	DefaultWorkerCount     = 2
	DefaultWorkerQueueSize = 64
)

// Example values shipped in .env.example
const (
	ExampleAdminAPIKey = "generate_with_openssl_rand_hex_32"
)
