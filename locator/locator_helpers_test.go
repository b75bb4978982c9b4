package locator

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writeScript writes an executable shell script standing in for an interpreter.
func writeScript(t *testing.T, path, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script interpreters are not supported on windows")
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

// countingRunner records invocations of a fake command runner.
type countingRunner struct {
	calls  int
	output []byte
	err    error
}

func (r *countingRunner) run(_ context.Context, _ string, _ ...string) ([]byte, error) {
	r.calls++
	return r.output, r.err
}

func failingRunner(t *testing.T) CommandRunner {
	return func(_ context.Context, name string, _ ...string) ([]byte, error) {
		t.Fatalf("interpreter %s must not be started", name)
		return nil, nil
	}
}
