package locator

// EnvironmentKey returns the identity used to deduplicate environments:
// the executable path, else the root path.
func EnvironmentKey(env *Environment) (string, bool) {
	if env == nil {
		return "", false
	}
	if env.Executable != "" {
		return env.Executable, true
	}
	if env.Root != "" {
		return env.Root, true
	}
	return "", false
}

// ManagerKey returns the identity of a manager, its executable path.
func ManagerKey(m *Manager) string {
	return m.Executable
}
