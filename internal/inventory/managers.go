package inventory

import (
	"github.com/safedep/dry/log"
	"github.com/safedep/pyscout/locator"
)

// KnownManagers are the environment manager binaries looked up on PATH.
var KnownManagers = []string{"conda", "mamba", "pyenv", "poetry", "pipenv", "uv", "virtualenv"}

// LookPathFunc resolves a binary name to an executable path, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// FindManagers looks up each tool with lookPath. Tools that are not found are
// skipped. An executable reached through more than one tool name is reported
// once, under the first name. The managers are only located, never run.
func FindManagers(lookPath LookPathFunc, tools []string) []locator.Manager {
	managers := make([]locator.Manager, 0, len(tools))
	seen := make(map[string]bool, len(tools))

	for _, tool := range tools {
		exe, err := lookPath(tool)
		if err != nil || exe == "" {
			continue
		}

		m := locator.Manager{Executable: exe, Tool: tool}
		key := locator.ManagerKey(&m)
		if seen[key] {
			log.Debugf("skipping %s, already reported as %s", tool, key)
			continue
		}
		seen[key] = true
		managers = append(managers, m)
	}

	return managers
}
