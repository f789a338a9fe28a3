package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR"` // empty logs to stdout only
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"required"`
	Version     string `env:"VERSION" envDefault:"dev"`

	CatalogPath         string  `env:"CATALOG_PATH" envDefault:"configs/items/items.json" validate:"required"`
	MaxInventoryWeight  float64 `env:"MAX_INVENTORY_WEIGHT" envDefault:"100" validate:"gt=0"`
	InitialCurrency     int     `env:"INITIAL_CURRENCY" envDefault:"0" validate:"min=0"`
	LootProbabilityGate bool    `env:"LOOT_PROBABILITY_GATE" envDefault:"false"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints, reporting the first offending field
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf(ErrMsgInvalidFieldFmt, fe.Field(), fe.Value(), fe.Tag(), ErrInvalidConfig)
		}
		return fmt.Errorf(ErrMsgValidateFmt, err, ErrInvalidConfig)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
