package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// envConfig maps ECOREWARDS_SERVER_* variables onto Config. Unset variables
// keep the value from the earlier layers.
type envConfig struct {
	EndpointAddrHTTP string        `env:"ECOREWARDS_SERVER_HTTP_ADDR"`
	EndpointAddrGRPC string        `env:"ECOREWARDS_SERVER_GRPC_ADDR"`
	ModelEnabled     bool          `env:"ECOREWARDS_SERVER_MODEL_ENABLED"`
	AllowedOrigins   []string      `env:"ECOREWARDS_SERVER_ALLOWED_ORIGINS" env-separator:","`
	ShutdownTimeout  time.Duration `env:"ECOREWARDS_SERVER_SHUTDOWN_TIMEOUT"`
	LogLevel         string        `env:"ECOREWARDS_SERVER_LOG_LEVEL"`
	LogFormat        string        `env:"ECOREWARDS_SERVER_LOG_FORMAT"`
}

func parseEnv(cfg *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	ec := envConfig{
		EndpointAddrHTTP: cfg.EndpointAddrHTTP,
		EndpointAddrGRPC: cfg.EndpointAddrGRPC,
		ModelEnabled:     cfg.ModelEnabled,
		AllowedOrigins:   cfg.AllowedOrigins,
		ShutdownTimeout:  cfg.ShutdownTimeout,
		LogLevel:         cfg.LogLevel,
		LogFormat:        cfg.LogFormat,
	}
	if err := cleanenv.ReadEnv(&ec); err != nil {
		return fmt.Errorf("read env: %w", err)
	}

	cfg.EndpointAddrHTTP = ec.EndpointAddrHTTP
	cfg.EndpointAddrGRPC = ec.EndpointAddrGRPC
	cfg.ModelEnabled = ec.ModelEnabled
	cfg.AllowedOrigins = ec.AllowedOrigins
	cfg.ShutdownTimeout = ec.ShutdownTimeout
	cfg.LogLevel = ec.LogLevel
	cfg.LogFormat = ec.LogFormat
	return nil
}
