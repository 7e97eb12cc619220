package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"war/messages"
)

// Config holds the process settings. None of them change the game rules.
type Config struct {
	LogLevel      string `env:"WAR_LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"WAR_LOG_FILE"` // Empty disables logging
	LogMaxSizeMB  int    `env:"WAR_LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"WAR_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"WAR_LOG_MAX_AGE_DAYS" envDefault:"28"`
	LogCompress   bool   `env:"WAR_LOG_COMPRESS" envDefault:"false"`
	Language      string `env:"WAR_LANG" envDefault:"pt-BR"`
	Seed          uint64 `env:"WAR_SEED"` // 0 seeds from the clock
	ClearScreen   bool   `env:"WAR_CLEAR_SCREEN" envDefault:"true"`
}

// Load reads the configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Tag(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c Config) Tag() (language.Tag, error) {
	return messages.Resolve(c.Language)
}
