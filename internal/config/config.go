// Package config loads runtime settings from the environment
package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/hero-sheet/internal/errors"
)

// Log levels accepted by SHEET_LOG_LEVEL
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config holds the settings shared by every command
type Config struct {
	// Locale is the BCP 47 tag numbers are formatted and parsed with
	Locale     string `env:"SHEET_LOCALE"      envDefault:"en-US"`
	PreferDark bool   `env:"SHEET_PREFER_DARK" envDefault:"false"`
	LogLevel   string `env:"SHEET_LOG_LEVEL"   envDefault:"warn"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return &cfg, nil
}

// Validate checks the locale and log level
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("locale", c.Locale, vb)
	if strings.TrimSpace(c.Locale) != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			vb.InvalidField("locale", err.Error())
		}
	}

	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel),
		[]string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}, vb)

	return vb.Build()
}

// Language returns the parsed locale tag
func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, errors.InvalidArgumentf("invalid locale %q", c.Locale).WithMeta("locale", c.Locale)
	}
	return tag, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to warn
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewLogger builds a text logger writing to w at the configured level
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.SlogLevel()}))
}
