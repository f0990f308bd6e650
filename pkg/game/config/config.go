// Package config loads game settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Config holds the game settings.
type Config struct {
	Locale       string `env:"DIADIA_LOCALE" envDefault:"it-IT"`
	LocalesDir   string `env:"DIADIA_LOCALES_DIR" envDefault:"locales"`
	NoColor      bool   `env:"DIADIA_NO_COLOR" envDefault:"false"`
	CFU          int    `env:"DIADIA_CFU" envDefault:"20"`
	BagMaxWeight int    `env:"DIADIA_BAG_MAX_WEIGHT" envDefault:"10"`
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("locale %q: %w", c.Locale, err)
	}
	if c.CFU <= 0 {
		return fmt.Errorf("cfu must be positive, got %d", c.CFU)
	}
	if c.BagMaxWeight < 0 {
		return fmt.Errorf("bag max weight must not be negative, got %d", c.BagMaxWeight)
	}
	return nil
}

// CatalogLanguage returns the name of the translation catalogue directory
// for the configured locale, e.g. "it_IT" for "it-IT".
func (c Config) CatalogLanguage() string {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return c.Locale
	}
	return strings.ReplaceAll(tag.String(), "-", "_")
}
