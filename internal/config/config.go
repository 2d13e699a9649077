// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Environment variables only, with the defaults declared below
//
// The parsed values are returned as a *Config pointer so the struct is
// shared by reference rather than copied everywhere.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-default supplies the value when neither the file nor the
// environment sets it, so the exercises run with no config at all.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StoragePath is the SQLite database path. ":memory:" keeps the
	// database in RAM for the lifetime of the process.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:":memory:"`

	// Exercises selects which exercises to run, in order.
	// Empty means all of them.
	Exercises []string `yaml:"exercises" env:"EXERCISES" env-separator:","`

	Output `yaml:"output"`
}

// Output holds settings for the text-encoding exercise.
// Nested under output: in the YAML file.
type Output struct {
	// Format is one of "json", "yaml", "toml".
	Format string `yaml:"format" env:"OUTPUT_FORMAT" env-default:"json"`
}

// Load reads the config file at path, or only the environment when
// path is empty, and returns the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		// cleanenv.ReadEnv fills the struct from env:"..." tags and
		// applies env-default values for anything unset.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
		return &cfg, nil
	}

	// Verify the file exists before trying to read it, for a clearer
	// message than the one the YAML decoder would give.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
	}

	// cleanenv.ReadConfig reads the YAML file, then overlays any env
	// values, then fills defaults.
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
	}

	return &cfg, nil
}

// MustLoad resolves the config path, loads it, and exits the process
// on failure. If this function returns, the config is usable.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return cfg
}
