package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/ecorewards/internal/flagx"
)

// parseFlags overlays flags on cfg:
//
//	-a string   HTTP bind address (e.g. ":5000")
//	-g string   gRPC health bind address (e.g. ":50051")
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-l"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrHTTP, "a", cfg.EndpointAddrHTTP, "address and port of the HTTP API")
	fs.StringVar(&cfg.EndpointAddrGRPC, "g", cfg.EndpointAddrGRPC, "address and port of the gRPC health service")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
