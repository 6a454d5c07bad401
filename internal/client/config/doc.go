// Package config loads runtime configuration for the plotline CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the listing backend REST API
//	-t int      request timeout (seconds)
//	-d string   path to the local session database
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://backend.example.com/api",
//	  "request_timeout": "10s",
//	  "session_db_path": "plotline.db",
//	  "online_check_interval": "30s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
