package locator

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	binaryNamePosix   = "python"
	binaryNameWindows = "python.exe"
)

// DefaultBinaryName returns the interpreter file name for the host platform.
func DefaultBinaryName() string {
	return binaryNameFor(runtime.GOOS)
}

func binaryNameFor(goos string) string {
	if goos == "windows" {
		return binaryNameWindows
	}
	return binaryNamePosix
}

// Prober finds the interpreter inside an environment root.
type Prober struct {
	// BinaryName is the interpreter file name, e.g. "python" or "python.exe".
	BinaryName string
}

// NewProber creates a Prober for the given binary name. An empty name selects
// the platform default.
func NewProber(binaryName string) *Prober {
	if binaryName == "" {
		binaryName = DefaultBinaryName()
	}
	return &Prober{BinaryName: binaryName}
}

// Candidates returns the interpreter locations checked for envRoot, in order.
// bin/ and Scripts/ are both checked on every platform.
func (p *Prober) Candidates(envRoot string) []string {
	return []string{
		filepath.Join(envRoot, "bin", p.BinaryName),
		filepath.Join(envRoot, "Scripts", p.BinaryName),
		filepath.Join(envRoot, p.BinaryName),
	}
}

// FindInterpreter returns the first candidate interpreter that exists as a file.
func (p *Prober) FindInterpreter(envRoot string) (string, bool) {
	for _, candidate := range p.Candidates(envRoot) {
		if isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// FindInterpreter probes envRoot using the platform default binary name.
func FindInterpreter(envRoot string) (string, bool) {
	return NewProber("").FindInterpreter(envRoot)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
