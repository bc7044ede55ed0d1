// Package config loads the lowerc configuration file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJS   = "js"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

var formats = []string{FormatJS, FormatYAML, FormatJSON, FormatCBOR}

type Config struct {
	// Indent is written once per nesting level in JavaScript output.
	Indent string `yaml:"indent"`
	// Format is one of js, yaml, json and cbor.
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
	// Arity is the parameter count used by idioms that take one.
	Arity int `yaml:"arity"`
	// State is the state number used by the state assignment idiom.
	State int `yaml:"state"`
}

func Default() Config {
	return Config{
		Indent:   "    ",
		Format:   FormatJS,
		LogLevel: "warn",
		Arity:    2,
	}
}

// Load reads the YAML file at path. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format %q, want one of %s", c.Format, strings.Join(formats, ", "))
	}
	if c.Arity < 0 {
		return fmt.Errorf("arity must not be negative, got %d", c.Arity)
	}
	if c.State < 0 {
		return fmt.Errorf("state must not be negative, got %d", c.State)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
