// Package config provides environment-variable-first configuration loading
// with optional YAML file fallback for the mimetree CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mimetree/mimetree"
)

// Config holds the complete application configuration.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig holds parser heuristic limits.
type ParserConfig struct {
	ScanWindow int `yaml:"scan_window"`
	MaxDepth   int `yaml:"max_depth"`
}

// InputConfig holds input handling configuration.
type InputConfig struct {
	// Format selects how input files are framed: "eml" (one message per
	// file), "mbox" (From-line separated stream), or "auto" to detect.
	Format string `yaml:"format"`
	// Charset is the IANA name of the input character encoding; input is
	// transcoded to UTF-8 before parsing.
	Charset string `yaml:"charset"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from environment variables with sensible defaults.
// Environment variables always take precedence.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file as the base layer,
// then overrides with environment variables. Returns an error if the
// specified file path does not exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Environment variables always override YAML values
	cfg.applyEnvVars()

	return cfg, nil
}

// Options converts the parser section into mimetree Options.
func (c *Config) Options() mimetree.Options {
	return mimetree.Options{
		ScanWindow: c.Parser.ScanWindow,
		MaxDepth:   c.Parser.MaxDepth,
	}
}

// applyDefaults sets sensible default values for all configuration fields.
func (c *Config) applyDefaults() {
	c.Parser.ScanWindow = mimetree.DefaultScanWindow
	c.Parser.MaxDepth = mimetree.DefaultMaxDepth
	c.Input.Format = "auto"
	c.Input.Charset = "utf-8"
	c.Logging.Level = "info"
}

// applyEnvVars overrides configuration with environment variable values.
// Only non-empty environment variables override existing values.
func (c *Config) applyEnvVars() {
	if v := os.Getenv("MIMETREE_SCAN_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Parser.ScanWindow = n
		}
	}
	if v := os.Getenv("MIMETREE_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Parser.MaxDepth = n
		}
	}

	if v := os.Getenv("MIMETREE_INPUT_FORMAT"); v != "" {
		c.Input.Format = strings.ToLower(v)
	}
	if v := os.Getenv("MIMETREE_CHARSET"); v != "" {
		c.Input.Charset = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}
