package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	BoardSize int    `yaml:"board-size" env:"TICTACTOE_BOARD_SIZE" env-default:"3"`
	HumanMark string `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X"`
}

// MustLoad - load configuration from the config file if it exists, otherwise from the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.BoardSize < 1 {
		return fmt.Errorf("%w: board-size %d: %w", apperror.ErrInvalidConfig, that.BoardSize, apperror.ErrInvalidBoardSize)
	}

	if !that.Human().IsValid() {
		return fmt.Errorf("%w: human-mark %q", apperror.ErrInvalidConfig, that.HumanMark)
	}

	return nil
}

func (that *Config) Human() entity.Mark {
	return entity.Mark(that.HumanMark)
}
