package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config is the YAML-configurable subset of ntsfdump's behavior (SPEC_FULL
// §4.12). CLI flags, when given, take precedence over these values.
type config struct {
	StrictLabelLength bool `yaml:"strictLabelLength"`
	CacheSize         int  `yaml:"cacheSize"`
	Verbose           bool `yaml:"verbose"`
}

// defaultConfig matches the values a fresh install behaves with if no
// -config flag is given.
func defaultConfig() config {
	return config{
		StrictLabelLength: true,
		CacheSize:         64,
		Verbose:           false,
	}
}

// loadConfig reads and parses a YAML config file at path, starting from
// defaultConfig so that a file overriding only some fields leaves the rest
// at their defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
