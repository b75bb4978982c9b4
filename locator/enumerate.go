package locator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/safedep/dry/log"
)

// ErrNotADirectory is returned when the enumerated path is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// Enumerator lists the virtual environments directly below a directory.
type Enumerator struct {
	Prober   *Prober
	Resolver *Resolver
}

// NewEnumerator creates an Enumerator. Nil arguments select the defaults.
func NewEnumerator(prober *Prober, resolver *Resolver) *Enumerator {
	if prober == nil {
		prober = NewProber("")
	}
	if resolver == nil {
		resolver = DefaultResolver()
	}
	return &Enumerator{
		Prober:   prober,
		Resolver: resolver,
	}
}

// Probe inspects a single environment root.
func (e *Enumerator) Probe(ctx context.Context, envRoot string) (Environment, bool) {
	executable, ok := e.Prober.FindInterpreter(envRoot)
	if !ok {
		return Environment{}, false
	}
	version, _ := e.Resolver.Resolve(ctx, executable)
	return NewEnvironment(executable, envRoot, version), true
}

// List returns every immediate child of dir that contains an interpreter.
// An error means dir itself could not be read, or ctx was cancelled part way
// (the environments found so far are returned with ctx's error). An empty
// result is non-nil. Entries that cannot be inspected are skipped.
func (e *Enumerator) List(ctx context.Context, dir string) ([]Environment, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if isExistingFile(dir) {
			return nil, fmt.Errorf("failed to list %s: %w", dir, ErrNotADirectory)
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	envs := make([]Environment, 0)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return envs, err
		}

		child := filepath.Join(dir, entry.Name())

		// Follows symlinks, a venv folder is often a link.
		info, err := os.Stat(child)
		if err != nil {
			log.Debugf("skipping %s: %v", child, err)
			continue
		}
		if !info.IsDir() {
			continue
		}

		env, ok := e.Probe(ctx, child)
		if !ok {
			continue
		}
		envs = append(envs, env)
	}

	return envs, nil
}

// ListEnvironments enumerates dir with the default prober and resolver.
func ListEnvironments(ctx context.Context, dir string) ([]Environment, error) {
	return NewEnumerator(nil, nil).List(ctx, dir)
}

func isExistingFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
