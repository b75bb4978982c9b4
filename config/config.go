// Package config provides configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ColorMode represents the color output mode.
type ColorMode string

const (
	// ColorAuto automatically detects terminal support.
	ColorAuto ColorMode = "auto"
	// ColorAlways always uses colors.
	ColorAlways ColorMode = "always"
	// ColorNever never uses colors.
	ColorNever ColorMode = "never"
)

// Config holds all configuration values.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Probe   ProbeConfig   `mapstructure:"probe"`
	Display DisplayConfig `mapstructure:"display"`
}

// SearchConfig controls which directories are enumerated by scan.
type SearchConfig struct {
	Paths      []string `mapstructure:"paths"`
	WorkonHome bool     `mapstructure:"workon_home"`
}

// ProbeConfig controls how interpreters are probed.
type ProbeConfig struct {
	// BinaryName overrides the platform interpreter name. Empty means default.
	BinaryName string `mapstructure:"binary_name"`
	// SpawnInterpreter allows running the interpreter when pyvenv.cfg has no version.
	SpawnInterpreter bool `mapstructure:"spawn_interpreter"`
	// Timeout bounds a whole command. Zero disables it.
	Timeout time.Duration `mapstructure:"timeout"`
}

// DisplayConfig holds display-related settings.
type DisplayConfig struct {
	Colors ColorMode `mapstructure:"colors"`
}

// Paths holds resolved filesystem paths.
type Paths struct {
	ConfigFile string
	ConfigDir  string
}

// Load loads configuration from the given path or default locations.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		paths := ResolvePaths()

		v.SetConfigName("config")
		v.AddConfigPath(paths.ConfigDir)
	}

	v.SetEnvPrefix("PYSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a Config with all default values.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// ResolvePaths returns the resolved filesystem paths for the current platform.
func ResolvePaths() *Paths {
	configDir := getConfigDir()

	return &Paths{
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		ConfigDir:  configDir,
	}
}

// SearchPaths returns the directories to scan, with "~" expanded and
// $WORKON_HOME appended when enabled. Duplicates are dropped.
func (c *Config) SearchPaths() []string {
	candidates := make([]string, 0, len(c.Search.Paths)+1)
	candidates = append(candidates, c.Search.Paths...)
	if c.Search.WorkonHome {
		if workon := os.Getenv("WORKON_HOME"); workon != "" {
			candidates = append(candidates, workon)
		}
	}

	seen := make(map[string]bool, len(candidates))
	paths := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if p == "" {
			continue
		}
		p = filepath.Clean(ExpandHome(p))
		if seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}

// ShouldUseColors returns true if colors should be used based on config and terminal.
func (c *Config) ShouldUseColors() bool {
	switch c.Display.Colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		// Auto: check if stdout is a terminal
		fileInfo, err := os.Stdout.Stat()
		if err != nil {
			return false
		}
		return (fileInfo.Mode() & os.ModeCharDevice) != 0
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
