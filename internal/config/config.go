package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Translator TranslatorConfig `yaml:"translator"`
	Fallback   FallbackConfig   `yaml:"fallback"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// TranslatorConfig holds translation pipeline settings. Every stage is
// independently toggleable; defaults enable the full pipeline.
type TranslatorConfig struct {
	EnableIdiomsLookup    bool          `yaml:"enable_idioms_lookup"    env:"TRANSLATOR_ENABLE_IDIOMS"         env-default:"true"`
	EnableMorphology      bool          `yaml:"enable_morphology"       env:"TRANSLATOR_ENABLE_MORPHOLOGY"     env-default:"true"`
	EnableReordering      bool          `yaml:"enable_reordering"       env:"TRANSLATOR_ENABLE_REORDERING"     env-default:"true"`
	EnableDisambiguation  bool          `yaml:"enable_disambiguation"   env:"TRANSLATOR_ENABLE_DISAMBIGUATION" env-default:"true"`
	EnablePostProcessing  bool          `yaml:"enable_post_processing"  env:"TRANSLATOR_ENABLE_POSTPROCESS"    env-default:"true"`
	DictionaryTTL         time.Duration `yaml:"dictionary_ttl"          env:"TRANSLATOR_DICTIONARY_TTL"        env-default:"5m"`
	CacheTTL              time.Duration `yaml:"cache_ttl"               env:"TRANSLATOR_CACHE_TTL"             env-default:"10m"`
	MaxCacheSize          int           `yaml:"max_cache_size"          env:"TRANSLATOR_MAX_CACHE_SIZE"        env-default:"1000"`
}

// FallbackConfig holds remote fallback translation service settings.
type FallbackConfig struct {
	Enabled             bool          `yaml:"enabled"              env:"FALLBACK_ENABLED"              env-default:"false"`
	URL                 string        `yaml:"url"                  env:"FALLBACK_URL"`
	APIKey              string        `yaml:"api_key"              env:"FALLBACK_API_KEY"`
	Timeout             time.Duration `yaml:"timeout"              env:"FALLBACK_TIMEOUT"              env-default:"8s"`
	ConfidenceThreshold float64       `yaml:"confidence_threshold" env:"FALLBACK_CONFIDENCE_THRESHOLD" env-default:"0.6"`
	BreakerMaxFailures  uint32        `yaml:"breaker_max_failures" env:"FALLBACK_BREAKER_MAX_FAILURES" env-default:"5"`
	BreakerOpenInterval time.Duration `yaml:"breaker_open_interval" env:"FALLBACK_BREAKER_OPEN_INTERVAL" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
