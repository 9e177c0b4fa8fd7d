// Package config loads runtime configuration for the EcoRewards terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. ECOREWARDS_* environment variables; a .env file in the working
//     directory is loaded first without overriding variables already set.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the classifier HTTP API
//	-g string   host:port of the classifier gRPC health endpoint ("" probes over HTTP)
//	-i int      classifier status check interval (seconds)
//	-d string   path of the local SQLite database
//	-l string   log level: debug, info, warn, error
//
// Environment variables
//
//	ECOREWARDS_CLASSIFIER_URL, ECOREWARDS_CLASSIFIER_GRPC_ADDR,
//	ECOREWARDS_HEALTH_CHECK_INTERVAL ("5s"), ECOREWARDS_REQUEST_TIMEOUT,
//	ECOREWARDS_DB_PATH, ECOREWARDS_LOG_LEVEL, ECOREWARDS_LOG_FORMAT
//
// # JSON schema
//
// Intervals use timex.Duration, so they are strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "classifier_url": "http://localhost:5000/api",
//	  "classifier_grpc_addr": "localhost:50051",
//	  "health_check_interval": "5s",
//	  "request_timeout": "10s",
//	  "database_path": "ecorewards.db",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
