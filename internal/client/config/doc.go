// Package config loads runtime configuration for the notable CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with an optional .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the notes backend
//	-t int      request timeout (seconds)
//	-l string   log format, "json" or "text"
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "5s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080",
//	  "http_timeout": "5s",
//	  "log_format": "json"
//	}
//
// Primary API
//
//   - type Config: holds BaseURL, HTTPTimeout and LogFormat
//   - func LoadConfig() (*Config, error): applies defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults(): sets sensible defaults
package config
