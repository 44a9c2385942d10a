// internal/config/env.go
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	ErrInvalidConfig = errors.New("invalid config")
)

// EnvPrefix — префикс всех переменных окружения демо.
const EnvPrefix = "SC_"

// Config — настройки запуска, читаются из окружения (и .env, если он есть).
type Config struct {
	WindowTitle  string  `env:"WINDOW_TITLE" envDefault:"State Container"`
	ScreenWidth  int     `env:"SCREEN_WIDTH" envDefault:"960"`
	ScreenHeight int     `env:"SCREEN_HEIGHT" envDefault:"540"`
	TPS          int     `env:"TPS" envDefault:"60"`
	StartState   string  `env:"START_STATE" envDefault:"menu"`
	MaxDeltaTime float64 `env:"MAX_DELTA_TIME" envDefault:"0.06"`
	LogLevel     string  `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string  `env:"LOG_FORMAT" envDefault:"text"`
}

// Load читает .env из рабочего каталога (если он есть) и разбирает окружение в Config.
func Load() (Config, error) {
	// .env необязателен
	_ = godotenv.Load()
	return Parse()
}

// Parse разбирает только переменные окружения, без .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	case c.MaxDeltaTime <= 0:
		return fmt.Errorf("%w: max delta time must be positive, got %v", ErrInvalidConfig, c.MaxDeltaTime)
	case c.StartState != StateMenu && c.StartState != StatePlay:
		return fmt.Errorf("%w: start state must be %q or %q, got %q", ErrInvalidConfig, StateMenu, StatePlay, c.StartState)
	}
	return nil
}
