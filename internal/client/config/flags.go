package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/ecorewards/internal/flagx"
)

func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-i", "-d", "-l"})

	fs := flag.NewFlagSet("ecorewards", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ClassifierURL, "a", cfg.ClassifierURL, "classifier API base URL")
	fs.StringVar(&cfg.ClassifierGRPCAddr, "g", cfg.ClassifierGRPCAddr, "classifier gRPC health address")
	interval := fs.Int("i", int(cfg.HealthCheckInterval.Seconds()), "classifier status check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	// -i only applies when given; earlier layers may hold sub-second values.
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			set = true
		}
	})
	if !set {
		return nil
	}
	if *interval <= 0 {
		return fmt.Errorf("parse flags: interval must be positive, got %d", *interval)
	}

	cfg.HealthCheckInterval = time.Duration(*interval) * time.Second
	return nil
}
