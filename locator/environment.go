// Package locator provides filesystem probing primitives for discovering
// Python interpreters and virtual environments.
package locator

// Environment is a Python interpreter discovered on disk.
type Environment struct {
	// Executable is the interpreter binary path.
	Executable string `json:"executable" yaml:"executable"`
	// Root is the environment directory. Empty when only the executable is known.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`
	// Version is the interpreter version. Empty when it could not be determined.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// NewEnvironment creates an Environment.
func NewEnvironment(executable, root, version string) Environment {
	return Environment{
		Executable: executable,
		Root:       root,
		Version:    version,
	}
}

// EnvironmentConfig is the parsed content of a pyvenv.cfg file.
type EnvironmentConfig struct {
	Version string
}

// Manager is an environment manager binary such as conda or pyenv.
type Manager struct {
	Executable string `json:"executable" yaml:"executable"`
	Tool       string `json:"tool,omitempty" yaml:"tool,omitempty"`
}
