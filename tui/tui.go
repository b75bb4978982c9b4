// Package tui provides the presentation layer for terminal output.
package tui

import (
	"io"
	"os"
)

// Format represents the output format.
type Format string

const (
	// FormatTable is the default table format.
	FormatTable Format = "table"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag value to a Format. Unknown values select the table.
func ParseFormat(format string) Format {
	switch Format(format) {
	case FormatJSON:
		return FormatJSON
	case FormatYAML:
		return FormatYAML
	default:
		return FormatTable
	}
}

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderScan renders the result of scanning search directories.
	RenderScan(scan *ScanView) error

	// RenderProbe renders the result of probing one environment root.
	RenderProbe(probe *ProbeView) error

	// RenderResolve renders the version resolution of one interpreter.
	RenderResolve(resolve *ResolveView) error

	// RenderKey renders a derived environment key.
	RenderKey(key *KeyView) error

	// RenderDoctor renders the doctor check results.
	RenderDoctor(result *DoctorView) error

	// RenderConfig renders the configuration.
	RenderConfig(config *ConfigView) error

	// RenderError renders an error message.
	RenderError(err error) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
	// Verbose increases output verbosity.
	Verbose bool
	// TerminalWidth is the width of the terminal for table rendering.
	// If 0, the width will be auto-detected.
	TerminalWidth int
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return NewJSONPresenter(opts)
	case FormatYAML:
		return NewYAMLPresenter(opts)
	default:
		return NewTablePresenter(opts)
	}
}
