package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// envConfig maps ECOREWARDS_* variables onto Config. Unset variables keep
// the value from the earlier layers.
type envConfig struct {
	ClassifierURL       string        `env:"ECOREWARDS_CLASSIFIER_URL"`
	ClassifierGRPCAddr  string        `env:"ECOREWARDS_CLASSIFIER_GRPC_ADDR"`
	HealthCheckInterval time.Duration `env:"ECOREWARDS_HEALTH_CHECK_INTERVAL"`
	RequestTimeout      time.Duration `env:"ECOREWARDS_REQUEST_TIMEOUT"`
	DatabasePath        string        `env:"ECOREWARDS_DB_PATH"`
	LogLevel            string        `env:"ECOREWARDS_LOG_LEVEL"`
	LogFormat           string        `env:"ECOREWARDS_LOG_FORMAT"`
}

// parseEnv loads ./.env when present (existing variables win) and applies
// the environment.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	ec := envConfig{
		ClassifierURL:       cfg.ClassifierURL,
		ClassifierGRPCAddr:  cfg.ClassifierGRPCAddr,
		HealthCheckInterval: cfg.HealthCheckInterval,
		RequestTimeout:      cfg.RequestTimeout,
		DatabasePath:        cfg.DatabasePath,
		LogLevel:            cfg.LogLevel,
		LogFormat:           cfg.LogFormat,
	}
	if err := cleanenv.ReadEnv(&ec); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	if ec.HealthCheckInterval <= 0 {
		return fmt.Errorf("read env: interval must be positive, got %s", ec.HealthCheckInterval)
	}

	cfg.ClassifierURL = ec.ClassifierURL
	cfg.ClassifierGRPCAddr = ec.ClassifierGRPCAddr
	cfg.HealthCheckInterval = ec.HealthCheckInterval
	cfg.RequestTimeout = ec.RequestTimeout
	cfg.DatabasePath = ec.DatabasePath
	cfg.LogLevel = ec.LogLevel
	cfg.LogFormat = ec.LogFormat
	return nil
}
