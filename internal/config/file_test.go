package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":       map[string]any{"name": "shell", "log_path": "/tmp/shell.log"},
		"transport": map[string]any{"url": "ws://127.0.0.1:4000/shell", "dial_timeout": "2s"},
		"protocol":  map[string]any{"resource": "email", "dialect": "namespaced", "features": []string{"open"}},
		"ui":        map[string]any{"notice_ttl": 1500000000, "inline": true},
	})

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "shell", cfg.App.Name)
	assert.Equal(t, "/tmp/shell.log", cfg.App.LogPath)
	assert.Equal(t, "ws://127.0.0.1:4000/shell", cfg.Transport.URL)
	assert.Equal(t, 2*time.Second, cfg.Transport.DialTimeout)
	assert.Equal(t, "email", cfg.Protocol.Resource)
	assert.Equal(t, "namespaced", cfg.Protocol.Dialect)
	assert.Equal(t, []string{"open"}, cfg.Protocol.Features)
	assert.Equal(t, 1500*time.Millisecond, cfg.UI.NoticeTTL)
	assert.True(t, cfg.UI.Inline)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_TOML(t *testing.T) {
	path := writeTempFile(t, "shell.TOML", `
[app]
name = "shell"

[transport]
dial_timeout = "250ms"

[protocol]
features = ["logout", "open"]
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.Equal(t, "shell", cfg.App.Name)
	assert.Equal(t, 250*time.Millisecond, cfg.Transport.DialTimeout)
	assert.Equal(t, []string{"logout", "open"}, cfg.Protocol.Features)
	assert.Zero(t, cfg.UI.NoticeTTL)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
		},
		{
			name: "broken json",
			path: func(t *testing.T) string { return writeTempFile(t, "c.json", "{") },
		},
		{
			name: "broken toml",
			path: func(t *testing.T) string { return writeTempFile(t, "c.toml", "[app") },
		},
		{
			name: "bad duration",
			path: func(t *testing.T) string {
				return writeTempFile(t, "c.json", `{"ui":{"notice_ttl":"later"}}`)
			},
		},
		{
			name: "duration of wrong type",
			path: func(t *testing.T) string {
				return writeTempFile(t, "c.json", `{"ui":{"notice_ttl":true}}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(tt.path(t))
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
