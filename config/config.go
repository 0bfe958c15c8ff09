package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=trace debug info warn error"`
	LogFormat  string     `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"console" validate:"oneof=console json"`
	Seed       uint64     `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	Tournament Tournament `yaml:"tournament"`
}

type Tournament struct {
	Games       int    `yaml:"games" env:"TICTACTOE_TOURNAMENT_GAMES" env-default:"100" validate:"gte=1"`
	Parallelism int    `yaml:"parallelism" env:"TICTACTOE_TOURNAMENT_PARALLELISM" env-default:"4" validate:"gte=1,lte=256"`
	OutputDir   string `yaml:"output-dir" env:"TICTACTOE_TOURNAMENT_OUTPUT_DIR" env-default:""`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads path, letting environment variables override it. A missing
// file is not an error; the environment and defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}
