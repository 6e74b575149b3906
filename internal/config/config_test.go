package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/stride/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a fresh temp dir so stray stride.yaml or .env files in the
// package directory never leak into a test.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return dir
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsWithoutFiles(t *testing.T) {
	chdir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 99, cfg.ReopenProgress)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	dir := chdir(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := chdir(t)
	writeFile(t, dir, DefaultFile, `
locale: pt
seed: true
reopen_progress: 80
log:
  level: debug
server:
  addr: ":9000"
llm:
  provider: ollama
  model: qwen2.5
  max_retries: 0
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "pt", cfg.Locale)
	assert.True(t, cfg.Seed)
	assert.Equal(t, 80, cfg.ReopenProgress)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, llm.ProviderOllama, cfg.LLM.Provider)
	assert.Equal(t, llm.DefaultOllamaEndpoint, cfg.LLM.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.LLM.Model)
	assert.Equal(t, 0, cfg.LLM.MaxRetries)
}

func TestLoad_EnvBeatsDotEnvBeatsFile(t *testing.T) {
	dir := chdir(t)
	path := writeFile(t, dir, "custom.yaml", "locale: pt\nserver:\n  addr: \":1111\"\n")
	writeFile(t, dir, ".env", "STRIDE_ADDR=:2222\nGEMINI_API_KEY=from-dotenv\nSTRIDE_LOCALE=en\n")
	t.Setenv("STRIDE_LOCALE", "pt")
	// godotenv sets real variables; clear the ones this test introduces.
	t.Cleanup(func() {
		os.Unsetenv("STRIDE_ADDR")
		os.Unsetenv("GEMINI_API_KEY")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":2222", cfg.Server.Addr, ".env overrides the file")
	assert.Equal(t, "pt", cfg.Locale, "process env overrides .env")
	assert.Equal(t, "from-dotenv", cfg.LLM.APIKey)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	dir := chdir(t)
	path := writeFile(t, dir, "elsewhere.yaml", "seed: true\n")
	t.Setenv("STRIDE_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Seed)
}

func TestLoad_InvalidValues(t *testing.T) {
	dir := chdir(t)

	writeFile(t, dir, DefaultFile, "reopen_progress: 100\n")
	_, err := Load("")
	assert.ErrorContains(t, err, "reopen_progress")

	writeFile(t, dir, DefaultFile, "log:\n  level: loud\n")
	_, err = Load("")
	assert.ErrorContains(t, err, "log level")

	writeFile(t, dir, DefaultFile, "locale: [unterminated\n")
	_, err = Load("")
	assert.ErrorContains(t, err, "parsing config")
}
