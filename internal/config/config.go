package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Storage
	DBPath       string
	StorageQuota int64

	// Remote mirror
	RemoteTimeout time.Duration
}

// defaultStorageQuota mirrors the typical browser localStorage limit.
const defaultStorageQuota = 5 * 1024 * 1024

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:   getEnv("PORT", "8080"),
		Env:    getEnv("ENV", "development"),
		DBPath: getEnv("DB_PATH", "pocketledger.db"),
	}

	quotaStr := getEnv("STORAGE_QUOTA_BYTES", "")
	quota, err := strconv.ParseInt(quotaStr, 10, 64)
	if err != nil || quota <= 0 {
		if quotaStr != "" {
			log.Printf("Warning: invalid STORAGE_QUOTA_BYTES value '%s', falling back to default\n", quotaStr)
		}
		quota = defaultStorageQuota
	}
	config.StorageQuota = quota

	// Remote connectivity checks hang-proof timeout
	timeoutStr := getEnv("REMOTE_TIMEOUT", "5s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid REMOTE_TIMEOUT value '%s', falling back to 5s\n", timeoutStr)
		timeout = 5 * time.Second
	}
	config.RemoteTimeout = timeout

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
