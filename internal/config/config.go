package config

import (
	"os"
	"strconv"
	"time"

	"lerida/internal/messaging"
	"lerida/internal/search"
	"lerida/internal/storage"
)

// Storage backend names
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendValkey   = "valkey"
)

// Config holds the application configuration
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	LogFormat      string
	RequestTimeout time.Duration

	StorageBackend string
	QuotaBytes     int

	NATSEnabled   bool
	SearchEnabled bool

	Postgres      storage.PostgresConfig
	Valkey        storage.ValkeyConfig
	NATS          messaging.Config
	Elasticsearch search.Config
}

// Load reads configuration from environment variables
func Load() *Config {
	quota := getEnvInt("STORAGE_QUOTA_BYTES", storage.DefaultQuotaBytes)

	return &Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SEC", 30)) * time.Second,

		StorageBackend: getEnv("STORAGE_BACKEND", BackendMemory),
		QuotaBytes:     quota,

		NATSEnabled:   getEnv("NATS_ENABLED", "false") == "true",
		SearchEnabled: getEnv("SEARCH_ENABLED", "false") == "true",

		Postgres: storage.PostgresConfig{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "lerida"),
			Password:           getEnv("DB_PASSWORD", "lerida123"),
			DBName:             getEnv("DB_NAME", "lerida"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
			QuotaBytes:         quota,
		},

		Valkey: storage.ValkeyConfig{
			Addr:       getEnv("VALKEY_ADDR", "localhost:6379"),
			Password:   getEnv("VALKEY_PASSWORD", ""),
			KeyPrefix:  getEnv("VALKEY_KEY_PREFIX", "lerida"),
			QuotaBytes: quota,
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "lerida"),
			ClientID:  getEnv("NATS_CLIENT_ID", "lerida-api"),
		},

		Elasticsearch: search.Config{
			URL:        getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
			Username:   getEnv("ELASTICSEARCH_USERNAME", ""),
			Password:   getEnv("ELASTICSEARCH_PASSWORD", ""),
			Index:      getEnv("ELASTICSEARCH_INDEX", "lerida-events"),
			MaxRetries: getEnvInt("ELASTICSEARCH_MAX_RETRIES", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
