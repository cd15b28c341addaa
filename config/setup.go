package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration in two layers: the YAML file at path (if
// path is non-empty), then environment variable overrides on top. Every
// field can be set by either layer; the environment wins.
//
// An empty path skips the file layer so a deployment can run on
// environment variables alone.
//
// Example:
//
//	cfg, err := config.Load("weft.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("applying environment overrides: %w", err)
	}

	return cfg, nil
}
