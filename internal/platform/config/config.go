package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName    string
	HTTPPort       string
	DBDriver       string
	PostgresDSN    string
	SQLitePath     string
	DownloadSecret string
	DownloadCDN    string
	DownloadTTL    time.Duration
	SweepInterval  time.Duration
	SweepBatchSize int

	EnablePublishSweep bool
	EnableExpirySweep  bool
	EnableOutboxRelay  bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "enablehub"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		driver = "postgres"
	}

	return Config{
		ServiceName:    service,
		HTTPPort:       port,
		DBDriver:       driver,
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		SQLitePath:     os.Getenv("SQLITE_PATH"),
		DownloadSecret: os.Getenv("DOWNLOAD_SIGNING_SECRET"),
		DownloadCDN:    os.Getenv("DOWNLOAD_CDN_BASE_URL"),
		DownloadTTL:    envDuration("DOWNLOAD_TTL", 15*time.Minute),
		SweepInterval:  envDuration("SWEEP_INTERVAL", 30*time.Second),
		SweepBatchSize: envInt("SWEEP_BATCH_SIZE", 100),

		EnablePublishSweep: envBool("ENABLE_PUBLISH_SWEEP", true),
		EnableExpirySweep:  envBool("ENABLE_EXPIRY_SWEEP", true),
		EnableOutboxRelay:  envBool("ENABLE_OUTBOX_RELAY", true),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}
