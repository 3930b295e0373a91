package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	GameType string `yaml:"game-type" env:"GAME_TYPE"`
	Search   Search `yaml:"search"`
}

type Search struct {
	DepthTieBreak bool `yaml:"depth-tie-break" env:"SEARCH_DEPTH_TIE_BREAK" env-default:"false"`
	PreferCenter  bool `yaml:"prefer-center" env:"SEARCH_PREFER_CENTER" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the config file and environment. A missing file falls back to environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

// PinnedGameType returns the configured game type, if the config sets one.
// An empty value leaves the choice to the player at start-up.
func (that *Config) PinnedGameType() (string, bool) {
	return that.GameType, that.GameType != ""
}
