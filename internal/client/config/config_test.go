package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerURL)
	assert.Equal(t, "~/.plantpal/client.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"-a", "http://api:9090", "-db", "/tmp/x.db", "-timeout", "5", "plants", "list"},
			expected: &Config{ServerURL: "http://api:9090", DatabasePath: "/tmp/x.db", HTTPTimeout: 5 * time.Second}},
		{name: "subcommand only", args: []string{"plants", "list"},
			expected: &Config{HTTPTimeout: 0}},
		{name: "bad timeout", args: []string{"-timeout", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseJson(t *testing.T) {
	t.Setenv("PLANTPAL_CONFIG", "")

	path := writeTempJSON(t, map[string]any{
		"server_url":   "https://plants.example",
		"http_timeout": "10s",
	})

	t.Run("overlays present fields", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-config", path})

		assert.Equal(t, "https://plants.example", cfg.ServerURL)
		assert.Equal(t, "~/.plantpal/client.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	})

	t.Run("no file → no changes", func(t *testing.T) {
		cfg := &Config{ServerURL: "keep"}
		parseJson(cfg, nil)
		assert.Equal(t, "keep", cfg.ServerURL)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ nope`), 0o600))
		require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	})
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	t.Setenv("PLANTPAL_CONFIG", "")
	path := writeTempJSON(t, map[string]any{"server_url": "https://from-json"})

	cfg := LoadConfig([]string{"-c", path, "-a", "https://from-flag"})
	assert.Equal(t, "https://from-flag", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
