// Package config loads runtime configuration for the eventhub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. EVENTHUB_* environment variables, after an optional .env file.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-b string   storage backend (sqlite, postgres, bolt, s3, memory)
//	-d string   database DSN
//	-t int      storage timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so "5s" and integer nanoseconds both work.
// Keys that are absent keep their current value:
//
//	{
//	  "storage_backend": "bolt",
//	  "bolt_path": "/var/lib/eventhub/eventhub.bolt",
//	  "storage_timeout": "10s",
//	  "seed_demo_events": false
//	}
package config
