package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REDIS_ADDRESS", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9000
gemini:
  model: gemini-test
  api_key: file-key
  timeout: 5s
generation:
  questions_per_row: 4
output:
  dir: /tmp/out
redis:
  address: localhost:6379
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "gemini-test", cfg.Gemini.Model)
	assert.Equal(t, "file-key", cfg.Gemini.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, DefaultGeminiBaseURL, cfg.Gemini.BaseURL)
	assert.Equal(t, 4, cfg.Generation.QuestionsPerRow)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.Equal(t, DefaultOutputFilename, cfg.Output.DefaultFilename)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
}

func TestLoadConfigFile_EnvOverridesAPIKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gemini:\n  api_key: file-key\n"), 0o644))
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
}

func TestLoadConfigFile_InvalidTimeout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gemini:\n  timeout: soon\n"), 0o644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}

func TestLoadConfigFile_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_OutputPath(t *testing.T) {
	cfg := &Config{Output: OutputConfig{Dir: "/data/out", DefaultFilename: DefaultOutputFilename}}

	assert.Equal(t, filepath.Join("/data/out", "result.csv"), cfg.OutputPath("result.csv"))
	assert.Equal(t, filepath.Join("/data/out", "result.csv"), cfg.OutputPath("../../etc/result.csv"))
	assert.Equal(t, filepath.Join("/data/out", DefaultOutputFilename), cfg.OutputPath(""))
}

func TestConfig_ParseTTLStringOrDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, time.Hour, cfg.ParseTTLStringOrDefault("1h", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("", time.Minute))
	assert.Equal(t, time.Minute, cfg.ParseTTLStringOrDefault("garbage", time.Minute))
}
