// Package config handles configuration for the dev classifier server:
// defaults, an optional JSON file (-c/-config), ECOREWARDS_SERVER_*
// environment variables (a ./.env file is loaded first) and command-line
// flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the dev classifier server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the JSON API (served under /api).
//   - EndpointAddrGRPC: bind address of the gRPC health service.
//   - ModelEnabled: when false the server behaves as if the model failed to
//     load; useful for exercising client fallbacks.
//   - AllowedOrigins: CORS origins; "*" allows any.
//   - ShutdownTimeout: grace period for in-flight HTTP requests.
type Config struct {
	EndpointAddrHTTP string
	EndpointAddrGRPC string
	ModelEnabled     bool
	AllowedOrigins   []string
	ShutdownTimeout  time.Duration
	LogLevel         string
	LogFormat        string
}

func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.EndpointAddrGRPC = ":50051"
	c.ModelEnabled = true
	c.AllowedOrigins = []string{"*"}
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and flags. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
