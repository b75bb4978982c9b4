package locator

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/safedep/dry/log"
)

// PyvenvConfigFile is the metadata file written at the root of a venv.
const PyvenvConfigFile = "pyvenv.cfg"

var (
	pyvenvVersionRe     = regexp.MustCompile(`^version\s*=\s*(\d+\.\d+\.\d+)$`)
	pyvenvVersionInfoRe = regexp.MustCompile(`^version_info\s*=\s*(\d+\.\d+\.\d+.*)$`)
)

// parentDir returns the directory containing path. A bare file name or a
// filesystem root has no parent.
func parentDir(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	cleaned := filepath.Clean(path)
	dir := filepath.Dir(cleaned)
	if dir == cleaned || dir == "." {
		return "", false
	}
	return dir, true
}

// FindConfigPath locates the pyvenv.cfg belonging to interpreter. It checks
// the interpreter's directory first and then the directory above it.
func FindConfigPath(interpreter string) (string, bool) {
	dir, ok := parentDir(interpreter)
	if !ok {
		return "", false
	}

	// env/pyvenv.cfg next to env/python, or env/bin/pyvenv.cfg
	cfg := filepath.Join(dir, PyvenvConfigFile)
	if _, err := os.Stat(cfg); err == nil {
		return cfg, true
	}

	// env/pyvenv.cfg above env/bin/python. A relative "bin" has "." above
	// it, which is the working directory.
	grandparent := filepath.Dir(dir)
	if grandparent == dir {
		return "", false
	}
	cfg = filepath.Join(grandparent, PyvenvConfigFile)
	if _, err := os.Stat(cfg); err == nil {
		return cfg, true
	}

	return "", false
}

// ParseConfig extracts the interpreter version from a pyvenv.cfg file.
// A "version = X.Y.Z" line takes priority over "version_info = X.Y.Z..." on
// the same line; across lines the first match wins.
func ParseConfig(configPath string) (*EnvironmentConfig, bool) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Debugf("error reading %s: %v", configPath, err)
		return nil, false
	}

	for line := range strings.Lines(string(data)) {
		line = strings.TrimRight(line, "\r\n")
		if !strings.Contains(line, "version") {
			continue
		}
		if m := pyvenvVersionRe.FindStringSubmatch(line); len(m) == 2 {
			return &EnvironmentConfig{Version: m[1]}, true
		}
		if m := pyvenvVersionInfoRe.FindStringSubmatch(line); len(m) == 2 {
			return &EnvironmentConfig{Version: m[1]}, true
		}
	}

	return nil, false
}

// FindAndParseConfig locates and parses the pyvenv.cfg for interpreter.
func FindAndParseConfig(interpreter string) (*EnvironmentConfig, bool) {
	cfg, ok := FindConfigPath(interpreter)
	if !ok {
		return nil, false
	}
	return ParseConfig(cfg)
}
