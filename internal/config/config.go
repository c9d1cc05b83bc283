package config

import (
	"fmt"
	"os"

	"fivecarddraw/internal/util"
	"fivecarddraw/pkg/playable/fivecarddraw"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for a five-card-draw session
type Config struct {
	loaded       bool
	PlayerName   string `yaml:"playerName" envconfig:"player_name"`
	OpponentName string `yaml:"opponentName" envconfig:"opponent_name"`
	Seed         int64  `yaml:"seed" envconfig:"seed"`
	SwapRounds   int    `yaml:"swapRounds" envconfig:"swap_rounds"`
	MaxSwapCards int    `yaml:"maxSwapCards" envconfig:"max_swap_cards"`
	Log          struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	opts := fivecarddraw.DefaultOptions()

	cfg := Config{
		PlayerName:   opts.PlayerName,
		OpponentName: opts.OpponentName,
		Seed:         opts.Seed,
		SwapRounds:   opts.SwapRounds,
		MaxSwapCards: opts.MaxSwapCards,
	}
	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file named by FCD_CONFIG_FILE (config.yaml by default) is optional, and
// FCD_* environment variables override it.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("FCD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not open config file: %w", err)
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("fcd", &cfg); err != nil {
		return fmt.Errorf("could not process environment: %w", err)
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// GameOptions returns the session options described by the configuration
func (c Config) GameOptions() fivecarddraw.Options {
	return fivecarddraw.Options{
		PlayerName:   c.PlayerName,
		OpponentName: c.OpponentName,
		SwapRounds:   c.SwapRounds,
		MaxSwapCards: c.MaxSwapCards,
		Seed:         c.Seed,
	}
}
