package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`
	MetricsPort string `env:"METRICS_PORT" env-default:"9090"`
	MediaRoot   string `env:"MEDIA_ROOT"   env-default:"media"`
	LogLevel    string `env:"LOG_LEVEL"    env-default:"info"`

	Import ImportConfig
	Images ImageConfig
	Lang   LanguageConfig
}

type ImportConfig struct {
	BatchSize     int           `env:"IMPORT_BATCH_SIZE"      env-default:"50"`
	MinNameLength int           `env:"IMPORT_MIN_NAME_LENGTH" env-default:"5"`
	LockTTL       time.Duration `env:"IMPORT_LOCK_TTL"        env-default:"30m"`
}

type ImageConfig struct {
	MaxPerProduct int           `env:"IMAGE_MAX_PER_PRODUCT" env-default:"5"`
	FetchTimeout  time.Duration `env:"IMAGE_FETCH_TIMEOUT"   env-default:"15s"`
	FetchInterval time.Duration `env:"IMAGE_FETCH_INTERVAL"  env-default:"500ms"`
}

type LanguageConfig struct {
	MinTargetLetters  int `env:"LANG_MIN_TARGET_LETTERS"  env-default:"2"`
	SuspectThreshold  int `env:"LANG_SUSPECT_THRESHOLD"   env-default:"3"`
	MinSentenceLength int `env:"DESC_MIN_SENTENCE_LENGTH" env-default:"12"`
}

func Load() (*Config, error) {
	// .env from the project root, then from the working directory
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Import.BatchSize <= 0 {
		return fmt.Errorf("IMPORT_BATCH_SIZE must be > 0 (got %d)", c.Import.BatchSize)
	}
	if c.Import.MinNameLength <= 0 {
		return fmt.Errorf("IMPORT_MIN_NAME_LENGTH must be > 0 (got %d)", c.Import.MinNameLength)
	}
	if c.Images.MaxPerProduct <= 0 {
		return fmt.Errorf("IMAGE_MAX_PER_PRODUCT must be > 0 (got %d)", c.Images.MaxPerProduct)
	}
	if c.Images.FetchTimeout <= 0 {
		return fmt.Errorf("IMAGE_FETCH_TIMEOUT must be > 0 (got %s)", c.Images.FetchTimeout)
	}
	if c.Lang.MinTargetLetters < 0 || c.Lang.SuspectThreshold < 0 || c.Lang.MinSentenceLength < 0 {
		return fmt.Errorf("language thresholds must not be negative")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error (got %q)", c.LogLevel)
	}
	return nil
}

// RequireDatabase fails when a store-backed mode has no DATABASE_URL.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}
