package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-d", "db", "-s", "memory", "-l", "debug",
				"-f", "text", "-m", "debug", "-o", "http://a, http://b", "-t", "3",
			},
			expected: &Config{
				HTTPAddr:           "127.0.0.1:9090",
				DatabaseDSN:        "db",
				Storage:            "memory",
				LogLevel:           "debug",
				LogFormat:          "text",
				GinMode:            "debug",
				CORSAllowedOrigins: []string{"http://a", "http://b"},
				ShutdownTimeout:    3 * time.Second,
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"cmd", "-config", "x.json", "-a", ":1"},
			expected: &Config{
				HTTPAddr: ":1",
			},
		},
		{
			name:        "bad int panics",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_KeepsSubSecondShutdownTimeout(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server"}

	t.Setenv(EnvShutdownTimeout, "1500ms")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, "")
	require.Equal(t, 1500*time.Millisecond, cfg.ShutdownTimeout)

	parseFlags(cfg)
	assert.Equal(t, 1500*time.Millisecond, cfg.ShutdownTimeout)

	os.Args = []string{"server", "-t", "4"}
	parseFlags(cfg)
	assert.Equal(t, 4*time.Second, cfg.ShutdownTimeout)
}
