package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	LLM       LLMConfig       `yaml:"llm"`
	Translate TranslateConfig `yaml:"translate"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// StorageConfig selects where the dictionary snapshot is kept.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	Dir    string `yaml:"dir"    env:"STORAGE_DIR"    env-default:"./data"`
	DSN    string `yaml:"dsn"    env:"DATABASE_DSN"`
	Key    string `yaml:"key"    env:"STORAGE_KEY"    env-default:"caretranslate_dictionary"`
}

// LLMConfig holds the text generation endpoint settings.
type LLMConfig struct {
	APIKey            string  `yaml:"api_key"             env:"LLM_API_KEY"`
	BaseURL           string  `yaml:"base_url"            env:"LLM_BASE_URL"`
	Model             string  `yaml:"model"               env:"LLM_MODEL"               env-default:"gpt-4o-mini"`
	Temperature       float32 `yaml:"temperature"         env:"LLM_TEMPERATURE"         env-default:"0.7"`
	MedicalMaxTokens  int     `yaml:"medical_max_tokens"  env:"LLM_MEDICAL_MAX_TOKENS"  env-default:"600"`
	CulturalMaxTokens int     `yaml:"cultural_max_tokens" env:"LLM_CULTURAL_MAX_TOKENS" env-default:"650"`
	KidsMaxTokens     int     `yaml:"kids_max_tokens"     env:"LLM_KIDS_MAX_TOKENS"     env-default:"600"`
}

// TranslateConfig holds the machine translation API settings.
type TranslateConfig struct {
	APIKey  string        `yaml:"api_key"  env:"GOOGLE_TRANSLATE_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"GOOGLE_TRANSLATE_BASE_URL"`
	Timeout time.Duration `yaml:"timeout"  env:"GOOGLE_TRANSLATE_TIMEOUT"  env-default:"15s"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}
