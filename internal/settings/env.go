package settings

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds launch options that can be overridden from the environment.
type Env struct {
	SettingsPath string `env:"WANDERER_SETTINGS" envDefault:"settings.yaml"`
	LevelPath    string `env:"WANDERER_LEVEL" envDefault:"data/level.yaml"`
	AssetsDir    string `env:"WANDERER_ASSETS" envDefault:"assets"`
	Width        int    `env:"WANDERER_WIDTH" envDefault:"1280"`
	Height       int    `env:"WANDERER_HEIGHT" envDefault:"720"`
}

// ParseEnv loads launch options from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if e.Width <= 0 || e.Height <= 0 {
		return Env{}, fmt.Errorf("parse env: window size %dx%d must be positive", e.Width, e.Height)
	}
	return e, nil
}
