package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdirTemp moves into an empty directory so no stray .env or config.yaml is picked up.
func chdirTemp(t *testing.T) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })
	require.NoError(t, os.Chdir(t.TempDir()))
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  shutdown_timeout: "3s"

log:
  level: "debug"
  format: "text"

storage:
  driver: "postgres"
  dsn: "postgres://u:p@localhost:5432/care?sslmode=disable"
  key: "care_dict"

llm:
  model: "gemini-2.0-flash"
  base_url: "https://generativelanguage.googleapis.com/v1beta/openai/"
  cultural_max_tokens: 700

translate:
  timeout: "4s"
`

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: 8080},
		Log:     LogConfig{Level: "info", Format: "json"},
		Storage: StorageConfig{Driver: DriverMemory, Key: "caretranslate_dictionary"},
		LLM:     LLMConfig{MedicalMaxTokens: 600, CulturalMaxTokens: 650, KidsMaxTokens: 600},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	chdirTemp(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "care_dict", cfg.Storage.Key)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, 600, cfg.LLM.MedicalMaxTokens)
	assert.Equal(t, 700, cfg.LLM.CulturalMaxTokens)
	assert.Equal(t, 4*time.Second, cfg.Translate.Timeout)
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	chdirTemp(t)
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("STORAGE_KEY", "other")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "other", cfg.Storage.Key)
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "./data", cfg.Storage.Dir)
	assert.Equal(t, "caretranslate_dictionary", cfg.Storage.Key)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 650, cfg.LLM.CulturalMaxTokens)
}

func TestLoad_DotEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	// t.Setenv restores the previous value; the variable itself must be absent for .env to apply.
	t.Setenv("GOOGLE_TRANSLATE_API_KEY", "")
	require.NoError(t, os.Unsetenv("GOOGLE_TRANSLATE_API_KEY"))
	require.NoError(t, os.WriteFile(".env", []byte("GOOGLE_TRANSLATE_API_KEY=from-dotenv\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Translate.APIKey)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", writeYAML(t, t.TempDir(), `{{{invalid yaml`))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "redis" }, wantErr: true},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Storage.Driver = DriverPostgres }, wantErr: true},
		{name: "file without dir", mutate: func(c *Config) { c.Storage.Driver = DriverFile }, wantErr: true},
		{name: "file with dir", mutate: func(c *Config) { c.Storage.Driver = DriverFile; c.Storage.Dir = "/tmp" }},
		{name: "empty key", mutate: func(c *Config) { c.Storage.Key = "" }, wantErr: true},
		{name: "zero tokens", mutate: func(c *Config) { c.LLM.KidsMaxTokens = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("component", "test"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "test", line["component"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("unknown"))
}
