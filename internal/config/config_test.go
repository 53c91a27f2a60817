package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pipecheck/internal/logger"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return &buf
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "test-rust-app", cfg.Name)
	assert.NotEmpty(t, cfg.Version)
	assert.NotEmpty(t, cfg.Features)
}

func TestParse_JSONRoundTrip(t *testing.T) {
	body := `{"name": "demo", "version": "2.3.4", "features": ["alpha", "beta", "gamma"]}`

	cfg, err := Parse([]byte(body), ".json")
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)

	again, err := Parse(raw, ".json")
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, again.Features, "feature order must survive the round-trip")
}

func TestParse_UnknownFieldsIgnored(t *testing.T) {
	body := `{"name": "demo", "version": "1.0.0", "features": ["x"], "extra": {"nested": true}}`

	cfg, err := Parse([]byte(body), ".json")
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name": "demo"`},
		{"name not a string", `{"name": 123, "version": "1.0.0", "features": ["x"]}`},
		{"missing features", `{"name": "demo", "version": "1.0.0"}`},
		{"empty name", `{"name": "", "version": "1.0.0", "features": ["x"]}`},
		{"feature not a string", `{"name": "demo", "version": "1.0.0", "features": [1]}`},
		{"not an object", `["demo"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body), ".json")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParse_YAML(t *testing.T) {
	body := "name: demo\nversion: 1.0.0\nfeatures:\n  - alpha\n  - beta\n"

	cfg, err := Parse([]byte(body), ".yaml")
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.Features)
}

func TestParse_YAMLInvalid(t *testing.T) {
	body := "name: demo\nversion: 1.0.0\n" // features missing

	_, err := Parse([]byte(body), ".yml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	body := `{"name": "from-file", "version": "9.9.9", "features": ["one", "two"]}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Name)
	assert.Equal(t, "9.9.9", cfg.Version)
	assert.Equal(t, []string{"one", "two"}, cfg.Features)
}

func TestLoad_UnreadableFileFallsBack(t *testing.T) {
	buf := captureLog(t)
	missing := filepath.Join(t.TempDir(), "no-such-config.json")

	cfg, err := Load(missing)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Contains(t, buf.String(), missing)
	assert.Contains(t, buf.String(), "using defaults")
}

func TestLoad_MalformedFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"name": 123}`), 0o600))

	_, err := Load(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}
