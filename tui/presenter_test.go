package tui

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleScan() *ScanView {
	return &ScanView{
		ID:        "0b5e8c1e-2f7a-4c1e-9d7b-1f1f2e3d4c5b",
		StartedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Directories: []DirectoryView{
			{Path: "/home/u/.virtualenvs", Status: "scanned", Environments: 2},
			{Path: "/home/u/.venvs", Status: "missing", Error: "no such file or directory"},
			{Path: "/srv/locked", Status: "unreadable", Error: "permission denied"},
		},
		Environments: []EnvironmentView{
			{Key: "/home/u/.virtualenvs/api/bin/python", Executable: "/home/u/.virtualenvs/api/bin/python", Root: "/home/u/.virtualenvs/api", Version: "3.11.4"},
			{Key: "/home/u/.virtualenvs/old/bin/python", Executable: "/home/u/.virtualenvs/old/bin/python", Root: "/home/u/.virtualenvs/old"},
		},
		Duplicates: 1,
	}
}

func newTestTable(buf *bytes.Buffer, verbose bool) *TablePresenter {
	return NewTablePresenter(PresenterOptions{Writer: buf, Verbose: verbose, TerminalWidth: 80})
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatYAML, ParseFormat("yaml"))
	assert.Equal(t, FormatTable, ParseFormat("table"))
	assert.Equal(t, FormatTable, ParseFormat("xml"))
}

func TestNewPresenter(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &JSONPresenter{}, NewPresenter(FormatJSON, PresenterOptions{Writer: &buf}))
	assert.IsType(t, &YAMLPresenter{}, NewPresenter(FormatYAML, PresenterOptions{Writer: &buf}))
	assert.IsType(t, &TablePresenter{}, NewPresenter(FormatTable, PresenterOptions{Writer: &buf, TerminalWidth: 80}))
}

func TestTablePresenter_RenderScan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestTable(&buf, false).RenderScan(sampleScan()))

	out := buf.String()
	assert.Contains(t, out, "Python environments")
	assert.Contains(t, out, "3.11.4")
	assert.Contains(t, out, "/home/u/.virtualenvs/api/bin/python")
	assert.Contains(t, out, "/home/u/.virtualenvs/old/bin/python")
	assert.Contains(t, out, "2 environments")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "1.5s")
	assert.Contains(t, out, "(1 duplicate skipped)")
	assert.NotContains(t, out, "permission denied")
	assert.NotContains(t, out, "\033[")
}

func TestTablePresenter_RenderScan_Verbose(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestTable(&buf, true).RenderScan(sampleScan()))

	out := buf.String()
	assert.Contains(t, out, "permission denied")
	assert.Contains(t, out, "scan 0b5e8c1e started 2024-03-01 10:00:00")
}

func TestTablePresenter_RenderScan_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestTable(&buf, false).RenderScan(&ScanView{}))
	assert.Contains(t, buf.String(), "No environments found.")
	assert.Contains(t, buf.String(), "0 environments")
}

func TestTablePresenter_RenderProbe(t *testing.T) {
	var buf bytes.Buffer
	probe := &ProbeView{
		Root:       "/envs/api",
		Found:      true,
		Candidates: []string{"/envs/api/bin/python", "/envs/api/Scripts/python", "/envs/api/python"},
		Environment: &EnvironmentView{
			Key: "/envs/api/bin/python", Executable: "/envs/api/bin/python", Root: "/envs/api", Version: "3.12.1",
		},
	}
	require.NoError(t, newTestTable(&buf, false).RenderProbe(probe))
	assert.Contains(t, buf.String(), "3.12.1")
	assert.NotContains(t, buf.String(), "Scripts")

	buf.Reset()
	require.NoError(t, newTestTable(&buf, false).RenderProbe(&ProbeView{
		Root:       "/envs/none",
		Candidates: []string{"/envs/none/bin/python"},
	}))
	assert.Contains(t, buf.String(), "No interpreter found.")
	assert.Contains(t, buf.String(), "/envs/none/bin/python")
}

func TestTablePresenter_RenderResolve(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestTable(&buf, false).RenderResolve(&ResolveView{
		Interpreter: "/envs/api/bin/python",
		Found:       true,
		Version:     "3.10.2",
		Source:      "pyvenv.cfg",
		ConfigPath:  "/envs/api/pyvenv.cfg",
	}))
	assert.Contains(t, buf.String(), "3.10.2")
	assert.Contains(t, buf.String(), "pyvenv.cfg")

	buf.Reset()
	require.NoError(t, newTestTable(&buf, false).RenderResolve(&ResolveView{Interpreter: "/x/python"}))
	assert.Contains(t, buf.String(), "unknown")
}

func TestTablePresenter_RenderKey(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestTable(&buf, false).RenderKey(&KeyView{Path: "/envs/a", Key: "/envs/a/bin/python", Kind: "executable"}))
	assert.Equal(t, "/envs/a/bin/python\n", buf.String())
}

func TestTablePresenter_RenderDoctor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestTable(&buf, false).RenderDoctor(&DoctorView{
		Checks: []DoctorCheck{
			{Name: "Config file", Status: CheckWarn, Message: "not found", Suggestion: "run config set"},
			{Name: "Binary name", Status: CheckOK, Message: "python"},
		},
	}))
	out := buf.String()
	assert.Contains(t, out, "Config file")
	assert.Contains(t, out, "run config set")
	assert.Contains(t, out, "Some checks failed.")
}

func TestTablePresenter_RenderConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestTable(&buf, false).RenderConfig(&ConfigView{
		Location: "/home/u/.config/pyscout/config.yaml",
		Values: map[string]interface{}{
			"display": map[string]interface{}{"colors": "never"},
			"probe":   map[string]interface{}{"spawn_interpreter": true},
		},
	}))
	out := buf.String()
	assert.Contains(t, out, "display.colors = never")
	assert.Contains(t, out, "probe.spawn_interpreter = true")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("display")), bytes.Index(buf.Bytes(), []byte("probe")))
}

func TestTablePresenter_RenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestTable(&buf, false).RenderError(errors.New("boom")))
	assert.Equal(t, "Error: boom\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTablePresenter_WriteError(t *testing.T) {
	p := NewTablePresenter(PresenterOptions{Writer: failingWriter{}, TerminalWidth: 80})
	assert.EqualError(t, p.RenderScan(sampleScan()), "closed")
}

func TestJSONPresenter_RenderScan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONPresenter(PresenterOptions{Writer: &buf}).RenderScan(sampleScan()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "0b5e8c1e-2f7a-4c1e-9d7b-1f1f2e3d4c5b", decoded["id"])
	envs, ok := decoded["environments"].([]interface{})
	require.True(t, ok)
	require.Len(t, envs, 2)
	second := envs[1].(map[string]interface{})
	assert.NotContains(t, second, "version")
}

func TestJSONPresenter_RenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONPresenter(PresenterOptions{Writer: &buf}).RenderError(errors.New("boom")))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestYAMLPresenter_RenderScan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLPresenter(PresenterOptions{Writer: &buf}).RenderScan(sampleScan()))

	var decoded struct {
		ID           string `yaml:"id"`
		Environments []struct {
			Executable string `yaml:"executable"`
			Version    string `yaml:"version"`
		} `yaml:"environments"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "0b5e8c1e-2f7a-4c1e-9d7b-1f1f2e3d4c5b", decoded.ID)
	require.Len(t, decoded.Environments, 2)
	assert.Equal(t, "3.11.4", decoded.Environments[0].Version)
}

func TestYAMLPresenter_RenderMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLPresenter(PresenterOptions{Writer: &buf}).RenderMessage("done"))
	assert.Equal(t, "message: done\n", buf.String())
}
