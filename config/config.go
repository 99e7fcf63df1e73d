// Package config loads application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Currency         string `env:"CRAFTQUOTE_CURRENCY" envDefault:"lei"`
	ExportDir        string `env:"CRAFTQUOTE_EXPORT_DIR" envDefault:"pb_exports"`
	PricingCacheSize int    `env:"CRAFTQUOTE_PRICING_CACHE_SIZE" envDefault:"256"`
	ReplyCategory    string `env:"CRAFTQUOTE_REPLY_CATEGORY" envDefault:"General"`
}

// Load reads the optional env files and then parses the environment. A
// missing env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
