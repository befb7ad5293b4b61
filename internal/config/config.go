package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	Match    Match  `yaml:"match"`
}

// Match configures the self-play rounds run at startup.
type Match struct {
	Rounds int `yaml:"rounds" env-default:"1"`

	// Openings are "row,col" moves played in order before the bot takes over.
	Openings []string `yaml:"openings"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
