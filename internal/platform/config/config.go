// Package config provides configuration loading and validation for the demo
// binary. Configuration is loaded from YAML files with environment variable
// overrides using a layered system: base.yaml -> {profile}.yaml -> env vars.
package config

// Config holds all configuration for the demo binary.
type Config struct {
	Log  LogConfig  `koanf:"log"`
	Demo DemoConfig `koanf:"demo"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// DemoConfig holds the walkthrough inputs: the todo titles to seed and the
// priority applied to each seeded todo before completion.
type DemoConfig struct {
	Seeds           []string `koanf:"seeds"`
	DefaultPriority string   `koanf:"default_priority"`
}
