// Package config loads the service configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quizd/quizd/internal/provider"
)

// Config is the full configuration tree. The AI section is handed to the
// provider Dispatcher; the network and cache sections stay with the outer
// service.
type Config struct {
	AI      provider.Config `yaml:"ai"`
	Network NetworkConfig   `yaml:"network"`
	Cache   CacheConfig     `yaml:"cache"`
}

// NetworkConfig controls where the HTTP service listens. With LAN enabled
// the service binds all interfaces instead of localhost only.
type NetworkConfig struct {
	Port int  `yaml:"port"`
	LAN  bool `yaml:"lan"`
}

// CacheConfig locates the answer database.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// Load reads the configuration from a YAML file. Environment variables in
// the file are expanded before parsing, so credentials can be kept out of
// the file itself (api_key: ${DEEPSEEK_API_KEY}).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate checks required fields and fills in defaults.
func (c *Config) Validate() error {
	if c.AI.Provider == "" {
		return fmt.Errorf("ai.provider is required")
	}

	if c.Network.Port == 0 {
		c.Network.Port = 5233 // default service port
	}
	if c.Network.Port < 0 || c.Network.Port > 65535 {
		return fmt.Errorf("network.port must be between 1 and 65535")
	}

	if c.Cache.Path == "" {
		c.Cache.Path = "answer.db"
	}

	return nil
}
