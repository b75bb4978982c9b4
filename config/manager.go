package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Manager reads and persists the pyscout config file.
type Manager struct {
	v          *viper.Viper
	configPath string
}

// NewManager creates a manager for configPath. A missing file is not an error.
func NewManager(configPath string) (*Manager, error) {
	v := newFileViper(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Manager{
		v:          v,
		configPath: configPath,
	}, nil
}

func newFileViper(configPath string) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetConfigFile(configPath)
	return v
}

// Get returns the value for key, or nil if it is unknown.
func (m *Manager) Get(key string) interface{} {
	return m.v.Get(key)
}

// Set validates and writes a value, persisting the complete config file.
func (m *Manager) Set(key string, value interface{}) error {
	if !m.HasKey(key) {
		return fmt.Errorf("unknown config key: %s", key)
	}

	m.v.Set(key, value)

	var cfg Config
	if err := m.v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := validate(&cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(m.v.AllSettings())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Reset removes the config file, effectively resetting to defaults.
func (m *Manager) Reset() error {
	if err := os.Remove(m.configPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config: %w", err)
	}

	m.v = newFileViper(m.configPath)

	return nil
}

// AllSettings returns defaults merged with file-based overrides.
func (m *Manager) AllSettings() map[string]interface{} {
	return m.v.AllSettings()
}

// ConfigPath returns the path to the configuration file.
func (m *Manager) ConfigPath() string {
	return m.configPath
}

// HasKey returns true if the given key exists in the configuration.
func (m *Manager) HasKey(key string) bool {
	return m.v.IsSet(key)
}

// ParseValue parses a command-line value into a boolean, a list or a string.
func ParseValue(value string) interface{} {
	if value == "true" {
		return true
	}
	if value == "false" {
		return false
	}
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		inner := strings.TrimPrefix(strings.TrimSuffix(value, "]"), "[")
		if strings.TrimSpace(inner) == "" {
			return []string{}
		}
		parts := strings.Split(inner, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		return parts
	}
	return value
}
