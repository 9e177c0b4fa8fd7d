package config

import (
	"time"
)

type Config struct {
	ClassifierURL       string
	ClassifierGRPCAddr  string
	HealthCheckInterval time.Duration
	RequestTimeout      time.Duration
	DatabasePath        string
	LogLevel            string
	LogFormat           string
}

func (c *Config) LoadDefaults() {
	c.ClassifierURL = "http://localhost:5000/api"
	c.ClassifierGRPCAddr = ""
	c.HealthCheckInterval = 5 * time.Second
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "ecorewards.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig applies defaults, then the JSON file named by -c/-config, then
// ECOREWARDS_* environment variables, then flags. args excludes the program
// name.
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
