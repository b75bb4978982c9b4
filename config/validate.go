package config

import (
	"fmt"
	"strings"
)

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	if cfg.Probe.Timeout < 0 {
		return fmt.Errorf("probe.timeout must be non-negative")
	}

	if strings.ContainsAny(cfg.Probe.BinaryName, `/\`) {
		return fmt.Errorf("invalid probe.binary_name: %q (must be a file name, not a path)", cfg.Probe.BinaryName)
	}

	for i, p := range cfg.Search.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("search.paths[%d]: must not be empty", i)
		}
	}

	return nil
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}
