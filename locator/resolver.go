package locator

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/safedep/dry/log"
)

// Version source names.
const (
	SourcePyvenvConfig = "pyvenv.cfg"
	SourceInterpreter  = "interpreter"
)

// interpreterVersionScript prints sys.version, e.g.
// "3.11.4 (main, Jun  7 2023, 00:00:00) [GCC 12.2.0]".
const interpreterVersionScript = "import sys; print(sys.version)"

// VersionSource is one strategy for determining an interpreter's version.
// Version returns ("", false) when the strategy does not apply or fails.
type VersionSource interface {
	Name() string
	Version(ctx context.Context, interpreter string) (string, bool)
}

// CommandRunner runs a program and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the program with os/exec. Standard error is discarded.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// ConfigSource reads the version from the environment's pyvenv.cfg.
// It never starts a process.
type ConfigSource struct{}

func (ConfigSource) Name() string { return SourcePyvenvConfig }

func (ConfigSource) Version(_ context.Context, interpreter string) (string, bool) {
	if _, ok := parentDir(interpreter); !ok {
		return "", false
	}
	cfg, ok := FindAndParseConfig(interpreter)
	if !ok {
		return "", false
	}
	return cfg.Version, true
}

// InterpreterSource asks the interpreter for its version.
type InterpreterSource struct {
	Run CommandRunner
}

// NewInterpreterSource creates an InterpreterSource. A nil runner uses ExecRunner.
func NewInterpreterSource(run CommandRunner) *InterpreterSource {
	if run == nil {
		run = ExecRunner
	}
	return &InterpreterSource{Run: run}
}

func (s *InterpreterSource) Name() string { return SourceInterpreter }

// Version runs the interpreter and keeps the first token of its output.
// The exit status is ignored; only stdout matters.
func (s *InterpreterSource) Version(ctx context.Context, interpreter string) (string, bool) {
	output, err := s.Run(ctx, interpreter, "-c", interpreterVersionScript)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			log.Debugf("failed to run %s: %v", interpreter, err)
			return "", false
		}
	}

	if !utf8.Valid(output) {
		log.Debugf("non utf-8 version output from %s", interpreter)
		return "", false
	}

	fields := strings.Fields(string(output))
	if len(fields) == 0 {
		return "", false
	}

	return fields[0], true
}

// Resolver tries its sources in order; first success wins.
type Resolver struct {
	sources []VersionSource
}

// NewResolver creates a resolver over the given sources.
func NewResolver(sources ...VersionSource) *Resolver {
	return &Resolver{sources: sources}
}

// DefaultResolver reads pyvenv.cfg first and falls back to running the interpreter.
func DefaultResolver() *Resolver {
	return NewResolver(ConfigSource{}, NewInterpreterSource(nil))
}

// ConfigOnlyResolver never starts a process.
func ConfigOnlyResolver() *Resolver {
	return NewResolver(ConfigSource{})
}

// Sources returns the names of the configured sources, in order.
func (r *Resolver) Sources() []string {
	names := make([]string, 0, len(r.sources))
	for _, s := range r.sources {
		names = append(names, s.Name())
	}
	return names
}

// Resolve returns the version of interpreter.
func (r *Resolver) Resolve(ctx context.Context, interpreter string) (string, bool) {
	version, _, ok := r.ResolveWithSource(ctx, interpreter)
	return version, ok
}

// ResolveWithSource returns the version and the name of the source that found it.
func (r *Resolver) ResolveWithSource(ctx context.Context, interpreter string) (string, string, bool) {
	for _, s := range r.sources {
		if ctx.Err() != nil {
			return "", "", false
		}
		if version, ok := s.Version(ctx, interpreter); ok {
			return version, s.Name(), true
		}
	}
	return "", "", false
}

// ResolveVersion resolves the version of interpreter with DefaultResolver.
func ResolveVersion(ctx context.Context, interpreter string) (string, bool) {
	return DefaultResolver().Resolve(ctx, interpreter)
}
