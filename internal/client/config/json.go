package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ecorewards/internal/flagx"
	"github.com/dmitrijs2005/ecorewards/internal/timex"
)

// JsonConfig is the on-disk shape. Absent fields keep their current value.
type JsonConfig struct {
	ClassifierURL       *string         `json:"classifier_url"`
	ClassifierGRPCAddr  *string         `json:"classifier_grpc_addr"`
	HealthCheckInterval *timex.Duration `json:"health_check_interval"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	DatabasePath        *string         `json:"database_path"`
	LogLevel            *string         `json:"log_level"`
	LogFormat           *string         `json:"log_format"`
}

func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.ClassifierURL, jc.ClassifierURL)
	setString(&cfg.ClassifierGRPCAddr, jc.ClassifierGRPCAddr)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.HealthCheckInterval != nil {
		cfg.HealthCheckInterval = jc.HealthCheckInterval.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
