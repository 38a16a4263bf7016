package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "base URL and timeout",
			args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-t", "10"},
			expected: &Config{
				BaseURL:     "http://127.0.0.1:9090",
				HTTPTimeout: 10 * time.Second,
			},
		},
		{
			name: "log format",
			args: []string{"cmd", "-a", "http://127.0.0.1:9090", "-l", "text"},
			expected: &Config{
				BaseURL:   "http://127.0.0.1:9090",
				LogFormat: "text",
			},
		},
		{
			name:        "non-numeric timeout",
			args:        []string{"cmd", "-a", "http://127.0.0.1:9090", "-t", "abc"},
			expectPanic: true,
			expected:    &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args
			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
