package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkrasnov/notable/internal/flagx"
	"github.com/dkrasnov/notable/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the timeout either as
// a string like "5s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL     string         `json:"base_url"`
	HTTPTimeout timex.Duration `json:"http_timeout"`
	LogFormat   string         `json:"log_format"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseEnv -> parseFlags,
// where later stages override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
