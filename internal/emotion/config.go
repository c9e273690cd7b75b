package emotion

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds decorator settings in a form that can be loaded from YAML.
//
// Example file:
//
//	personality: sassy
//	message_every: 10
//	enabled: true
//	colors: false
type Config struct {
	Personality  string `yaml:"personality"`
	MessageEvery int    `yaml:"message_every"`
	Enabled      bool   `yaml:"enabled"`
	Colors       bool   `yaml:"colors"`
}

// DefaultConfig returns the decorator defaults: wholesome, a message every
// step, messages enabled, colored output.
func DefaultConfig() Config {
	return Config{
		Personality:  "wholesome",
		MessageEvery: 1,
		Enabled:      true,
		Colors:       true,
	}
}

// LoadConfig reads a YAML config file, layering it over DefaultConfig.
// Fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("emotion: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("emotion: parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings New would refuse.
func (c Config) Validate() error {
	if c.MessageEvery < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMessageEvery, c.MessageEvery)
	}
	return nil
}

// Options renders the config as construction options for New.
func (c Config) Options() []Option {
	return []Option{
		WithPersonality(c.Personality),
		WithMessageEvery(c.MessageEvery),
		WithEnabled(c.Enabled),
		WithPrintFn(NewColoredPrinter(c.Personality, c.Colors).Print),
	}
}
