package config

import (
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Search defaults
	v.SetDefault("search.paths", defaultSearchPaths())
	v.SetDefault("search.workon_home", true)

	// Probe defaults
	v.SetDefault("probe.binary_name", "") // Empty means use platform default
	v.SetDefault("probe.spawn_interpreter", true)
	v.SetDefault("probe.timeout", 30*time.Second)

	// Display defaults
	v.SetDefault("display.colors", "auto")
}

// defaultSearchPaths lists the usual homes of virtualenvwrapper, pipenv and
// hand-made venv collections.
func defaultSearchPaths() []string {
	return []string{
		filepath.Join("~", ".virtualenvs"),
		filepath.Join("~", ".venvs"),
		filepath.Join("~", ".local", "share", "virtualenvs"),
	}
}
