package tui

import "time"

// EnvironmentView represents a discovered environment.
type EnvironmentView struct {
	Key        string `json:"key" yaml:"key"`
	Executable string `json:"executable" yaml:"executable"`
	Root       string `json:"root,omitempty" yaml:"root,omitempty"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
}

// DirectoryView represents the outcome of scanning one directory.
type DirectoryView struct {
	Path         string `json:"path" yaml:"path"`
	Status       string `json:"status" yaml:"status"`
	Environments int    `json:"environments" yaml:"environments"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ScanView represents a complete scan.
type ScanView struct {
	ID           string            `json:"id" yaml:"id"`
	StartedAt    time.Time         `json:"started_at" yaml:"started_at"`
	Duration     time.Duration     `json:"duration_ns" yaml:"duration"`
	Directories  []DirectoryView   `json:"directories" yaml:"directories"`
	Environments []EnvironmentView `json:"environments" yaml:"environments"`
	Duplicates   int               `json:"duplicates" yaml:"duplicates"`
}

// ProbeView represents the probe of a single environment root.
type ProbeView struct {
	Root        string           `json:"root" yaml:"root"`
	Found       bool             `json:"found" yaml:"found"`
	Candidates  []string         `json:"candidates" yaml:"candidates"`
	Environment *EnvironmentView `json:"environment,omitempty" yaml:"environment,omitempty"`
}

// ResolveView represents the version resolution of one interpreter.
type ResolveView struct {
	Interpreter string   `json:"interpreter" yaml:"interpreter"`
	Found       bool     `json:"found" yaml:"found"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Source      string   `json:"source,omitempty" yaml:"source,omitempty"`
	ConfigPath  string   `json:"config_path,omitempty" yaml:"config_path,omitempty"`
	Sources     []string `json:"sources" yaml:"sources"`
}

// KeyView represents a derived environment key.
type KeyView struct {
	Path string `json:"path" yaml:"path"`
	Key  string `json:"key" yaml:"key"`
	// Kind is "executable" or "root".
	Kind string `json:"kind" yaml:"kind"`
}

// DoctorView represents doctor check results.
type DoctorView struct {
	Checks []DoctorCheck `json:"checks" yaml:"checks"`
	AllOK  bool          `json:"all_ok" yaml:"all_ok"`
}

// DoctorCheck represents a single doctor check.
type DoctorCheck struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Status      CheckStatus `json:"status" yaml:"status"`
	Message     string      `json:"message,omitempty" yaml:"message,omitempty"`
	Suggestion  string      `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// CheckStatus represents the status of a doctor check.
type CheckStatus string

const (
	CheckOK   CheckStatus = "ok"
	CheckWarn CheckStatus = "warn"
	CheckFail CheckStatus = "fail"
)

// ConfigView represents configuration for display.
type ConfigView struct {
	Location string                 `json:"location" yaml:"location"`
	Values   map[string]interface{} `json:"values" yaml:"values"`
}
