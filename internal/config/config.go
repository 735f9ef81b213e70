// Package config provides YAML configuration file loading and validation.
// It handles environment variable expansion and default value application.
package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given. A
// missing file at the default path is not an error; the built-in defaults
// apply.
const DefaultPath = "chaincli.yaml"

// Config represents the root configuration structure loaded from YAML.
type Config struct {
	Node Node `yaml:"node"`
}

// Node describes the JSON-RPC endpoint of the node this client talks to.
type Node struct {
	Address     string        `yaml:"address"`      // host:port of the JSON-RPC server (supports ${VAR} env expansion)
	DialTimeout time.Duration `yaml:"dial_timeout"` // TCP connect timeout (e.g., "10s")
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Node: Node{
			Address:     "127.0.0.1:21338",
			DialTimeout: 10 * time.Second,
		},
	}
}

// Validate validates the configuration and applies defaults where a field
// was left unset.
func (c *Config) Validate() error {
	if c.Node.Address == "" {
		c.Node.Address = Default().Node.Address
	}
	if c.Node.DialTimeout == 0 {
		c.Node.DialTimeout = Default().Node.DialTimeout
	}
	if c.Node.DialTimeout < 0 {
		return fmt.Errorf("node.dial_timeout must be positive")
	}

	host, port, err := net.SplitHostPort(c.Node.Address)
	if err != nil {
		return fmt.Errorf("node.address %q is not a valid host:port: %w", c.Node.Address, err)
	}
	if host == "" || port == "" {
		return fmt.Errorf("node.address %q is missing a host or port", c.Node.Address)
	}

	return nil
}

// Load reads and parses a YAML configuration file, expanding ${VAR}
// environment references and validating the result. A missing file at the
// default path falls back to Default(); a missing file at an explicit path
// is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv reads KEY=VALUE pairs from a .env file in the current working
// directory and sets them with os.Setenv, so ${VAR} references in the
// config file can be satisfied without exporting variables manually.
// A missing .env file is silently ignored.
func LoadEnv() {
	data, err := os.ReadFile(".env")
	if err != nil {
		return
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		os.Setenv(strings.TrimSpace(key), value)
	}
}
