package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendSQLite = "sqlite"
	CacheBackendOff    = "off"
)

type Config struct {
	EngineBaseURL    string        `env:"ENGINE_BASE_URL"    envDefault:"http://127.0.0.1:8080/v1"`
	EngineAPIKey     string        `env:"ENGINE_API_KEY"     envDefault:"sk-no-key-required"`
	EngineModel      string        `env:"ENGINE_MODEL"       envDefault:"microsoft_Phi-4-mini-instruct-Q4_K_M.gguf"`
	EngineMaxRetries int           `env:"ENGINE_MAX_RETRIES" envDefault:"0"`
	ModelDisplayName string        `env:"MODEL_DISPLAY_NAME" envDefault:"Phi-4-mini-instruct"`
	ModelFamily      string        `env:"MODEL_FAMILY"       envDefault:"Phi-4"`
	CacheBackend     string        `env:"CACHE_BACKEND"      envDefault:"memory"`
	DBPath           string        `env:"DB_PATH"            envDefault:":memory:"`
	CacheTTL         time.Duration `env:"CACHE_TTL"          envDefault:"1h"`
	CacheMaxEntries  int           `env:"CACHE_MAX_ENTRIES"  envDefault:"256"`
	LogLevel         slog.Level    `env:"LOG_LEVEL"          envDefault:"error"`
}

func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom parses cfg from environment, overriding the process environment
// when environment is non-nil.
func LoadFrom(environment map[string]string) (Config, error) {
	var cfg Config

	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.CacheBackend {
	case CacheBackendMemory, CacheBackendSQLite, CacheBackendOff:
	default:
		return Config{}, fmt.Errorf("unsupported CACHE_BACKEND %q", cfg.CacheBackend)
	}

	return cfg, nil
}
