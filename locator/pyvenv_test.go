package locator

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentDir(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "python"},
		{path: "./python"},
		{path: ""},
		{path: string(filepath.Separator)},
		{path: filepath.Join("env", "python"), want: "env", wantOK: true},
		{path: filepath.Join("env", "bin", "python"), want: filepath.Join("env", "bin"), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := parentDir(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindConfigPath_InterpreterDirectory(t *testing.T) {
	root := t.TempDir()
	cfg := writeFile(t, filepath.Join(root, PyvenvConfigFile), "version = 3.10.2\n")

	got, ok := FindConfigPath(filepath.Join(root, "python"))
	require.True(t, ok)
	assert.Equal(t, cfg, got)
}

func TestFindConfigPath_OneLevelUp(t *testing.T) {
	root := t.TempDir()
	cfg := writeFile(t, filepath.Join(root, PyvenvConfigFile), "version = 3.10.2\n")

	got, ok := FindConfigPath(filepath.Join(root, "bin", "python"))
	require.True(t, ok)
	assert.Equal(t, cfg, got)
}

func TestFindConfigPath_NearestWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, PyvenvConfigFile), "version = 3.10.2\n")
	near := writeFile(t, filepath.Join(root, "bin", PyvenvConfigFile), "version = 3.12.0\n")

	got, ok := FindConfigPath(filepath.Join(root, "bin", "python"))
	require.True(t, ok)
	assert.Equal(t, near, got)
}

func TestFindConfigPath_NotFound(t *testing.T) {
	root := t.TempDir()

	_, ok := FindConfigPath(filepath.Join(root, "bin", "python"))
	assert.False(t, ok)

	_, ok = FindConfigPath("python")
	assert.False(t, ok)
}

func TestFindConfigPath_RelativeFromEnvironmentRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, PyvenvConfigFile), "version = 3.10.2\n")
	writeFile(t, filepath.Join(root, "bin", "python"), "")
	t.Chdir(root)

	got, ok := FindConfigPath(filepath.Join("bin", "python"))
	require.True(t, ok)
	assert.Equal(t, PyvenvConfigFile, got)

	r := NewResolver(ConfigSource{}, NewInterpreterSource(failingRunner(t)))
	version, source, ok := r.ResolveWithSource(context.Background(), filepath.Join("bin", "python"))
	require.True(t, ok)
	assert.Equal(t, "3.10.2", version)
	assert.Equal(t, SourcePyvenvConfig, source)
}

func TestParseConfig_LongLines(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), PyvenvConfigFile),
		"command = "+strings.Repeat("x", 70000)+"\nversion = 3.10.2\n")

	cfg, ok := ParseConfig(path)
	require.True(t, ok)
	assert.Equal(t, "3.10.2", cfg.Version)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "version line",
			content: "home = /usr/bin\ninclude-system-site-packages = false\nversion = 3.10.2\n",
			want:    "3.10.2",
		},
		{
			name:    "version_info line",
			content: "home = /usr/bin\nversion_info = 3.10.2.final.0\n",
			want:    "3.10.2.final.0",
		},
		{
			name:    "first matching line wins",
			content: "version_info = 3.9.1.final.0\nversion = 3.10.2\n",
			want:    "3.9.1.final.0",
		},
		{
			name:    "whitespace tolerant",
			content: "version=3.11.4\n",
			want:    "3.11.4",
		},
		{
			name:    "crlf line endings",
			content: "home = C:\\Python311\r\nversion = 3.11.4\r\n",
			want:    "3.11.4",
		},
		{
			name:    "non matching version lines are skipped",
			content: "uv_version = 0.4.0\nversion = 3.12.1\n",
			want:    "3.12.1",
		},
		{
			name:    "two component version is rejected",
			content: "version = 3.10\n",
		},
		{
			name:    "trailing content after version is rejected",
			content: "version = 3.10.2rc1\n",
		},
		{
			name:    "no version line",
			content: "home = /usr/bin\ninclude-system-site-packages = false\n",
		},
		{
			name:    "empty file",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(t.TempDir(), PyvenvConfigFile), tt.content)

			cfg, ok := ParseConfig(path)
			if tt.want == "" {
				assert.False(t, ok)
				assert.Nil(t, cfg)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, cfg.Version)
		})
	}
}

func TestParseConfig_MissingFile(t *testing.T) {
	cfg, ok := ParseConfig(filepath.Join(t.TempDir(), PyvenvConfigFile))
	assert.False(t, ok)
	assert.Nil(t, cfg)
}

func TestFindAndParseConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, PyvenvConfigFile), "version = 3.10.2\n")

	cfg, ok := FindAndParseConfig(filepath.Join(root, "bin", "python"))
	require.True(t, ok)
	assert.Equal(t, "3.10.2", cfg.Version)

	_, ok = FindAndParseConfig("python")
	assert.False(t, ok)
}
