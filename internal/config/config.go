package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment once at startup.
type Config struct {
	// DBPath overrides the default ~/.liferpg.db location.
	DBPath string `env:"LIFERPG_DB"`
	// NoColor disables styled output.
	NoColor bool `env:"LIFERPG_NO_COLOR"`
	// Oracle toggles the motivational message line.
	Oracle bool `env:"LIFERPG_ORACLE" envDefault:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
