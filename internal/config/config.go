// Package config loads the command-line tool configuration.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Output formats understood by the tokens command.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
	FormatDump    = "dump"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatJSON, FormatMsgpack, FormatDump}

// Config holds the settings read from the YAML file.
type Config struct {
	Format   string `yaml:"format,omitempty"`
	History  string `yaml:"history,omitempty"`   // REPL history file
	LogLevel string `yaml:"log-level,omitempty"` // logrus level name
	Prompt   string `yaml:"prompt,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Format:   FormatText,
		LogLevel: "info",
		Prompt:   "basic > ",
	}
}

// Load reads the configuration from fileName on top of the defaults.
// An empty fileName returns the defaults.
func Load(fileName string) (Config, error) {
	cfg := Default()
	if len(fileName) == 0 {
		return cfg, nil // OK
	}

	buf, err := os.ReadFile(fileName)
	if err != nil {
		return cfg, fmt.Errorf("failed to read configuration from %q: %w", fileName, err)
	}

	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse configuration from %q: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration in %q: %w", fileName, err)
	}

	return cfg, nil
}

// Validate checks the format and the log level.
func (c Config) Validate() error {
	if !IsFormat(c.Format) {
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed logging level.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// IsFormat reports whether name is a supported output format.
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}
