package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ecorewards/internal/flagx"
	"github.com/dmitrijs2005/ecorewards/internal/timex"
)

// JsonConfig is the on-disk shape; absent fields keep their defaults.
//
//	{
//	  "endpoint_addr_http": ":5000",
//	  "endpoint_addr_grpc": ":50051",
//	  "model_enabled": true,
//	  "allowed_origins": ["http://localhost:5173"],
//	  "shutdown_timeout": "5s",
//	  "log_level": "debug",
//	  "log_format": "text"
//	}
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	ModelEnabled     *bool           `json:"model_enabled"`
	AllowedOrigins   []string        `json:"allowed_origins"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	LogLevel         *string         `json:"log_level"`
	LogFormat        *string         `json:"log_format"`
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

	if jc.EndpointAddrHTTP != nil {
		cfg.EndpointAddrHTTP = *jc.EndpointAddrHTTP
	}
	if jc.EndpointAddrGRPC != nil {
		cfg.EndpointAddrGRPC = *jc.EndpointAddrGRPC
	}
	if jc.ModelEnabled != nil {
		cfg.ModelEnabled = *jc.ModelEnabled
	}
	if jc.AllowedOrigins != nil {
		cfg.AllowedOrigins = jc.AllowedOrigins
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	return nil
}
