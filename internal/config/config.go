package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Routing collaborator (OSRM-compatible).
	RoutingBaseURL   string
	RoutingTimeout   time.Duration
	RoutingCacheSize int

	// Trained classifier scoring service.
	ModelURL     string
	ModelEnabled bool
	ModelTimeout time.Duration

	// SOS alert publishing.
	KafkaBrokers    []string
	KafkaAlertTopic string
	AlertsEnabled   bool
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	routingTimeout, err := parseTimeout("ROUTING_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	modelTimeout, err := parseTimeout("MODEL_TIMEOUT", "2s")
	if err != nil {
		return nil, err
	}

	modelURL := os.Getenv("MODEL_URL")
	modelEnabled := modelURL != ""
	if v := os.Getenv("MODEL_ENABLED"); v != "" {
		modelEnabled = v == "true"
	}

	alertsEnabled := os.Getenv("ALERTS_ENABLED") == "true"

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		RoutingBaseURL:   sharedcfg.EnvOrDefault("ROUTING_BASE_URL", "http://router.project-osrm.org"),
		RoutingTimeout:   routingTimeout,
		RoutingCacheSize: parseRoutingCacheSize(),

		ModelURL:     modelURL,
		ModelEnabled: modelEnabled,
		ModelTimeout: modelTimeout,

		KafkaBrokers:    sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaAlertTopic: sharedcfg.EnvOrDefault("KAFKA_ALERT_TOPIC", "flood-sos-alerts"),
		AlertsEnabled:   alertsEnabled,
	}

	if cfg.RoutingBaseURL == "" {
		return nil, errors.New("ROUTING_BASE_URL is required")
	}
	if cfg.ModelEnabled && cfg.ModelURL == "" {
		return nil, errors.New("MODEL_ENABLED is true but MODEL_URL is not set")
	}
	if cfg.AlertsEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("ALERTS_ENABLED is true but KAFKA_BROKERS is empty")
	}

	return cfg, nil
}

func parseTimeout(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}

func parseRoutingCacheSize() int {
	if s := os.Getenv("ROUTING_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 256
}
