package tui

import (
	"encoding/json"
	"io"
)

// JSONPresenter renders output as JSON.
type JSONPresenter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter.
func NewJSONPresenter(opts PresenterOptions) *JSONPresenter {
	encoder := json.NewEncoder(opts.Writer)
	encoder.SetIndent("", "  ")
	return &JSONPresenter{
		w:       opts.Writer,
		encoder: encoder,
	}
}

// RenderScan renders the scan as JSON.
func (p *JSONPresenter) RenderScan(scan *ScanView) error {
	return p.encoder.Encode(scan)
}

// RenderProbe renders the probe result as JSON.
func (p *JSONPresenter) RenderProbe(probe *ProbeView) error {
	return p.encoder.Encode(probe)
}

// RenderResolve renders the resolve result as JSON.
func (p *JSONPresenter) RenderResolve(resolve *ResolveView) error {
	return p.encoder.Encode(resolve)
}

// RenderKey renders the key as JSON.
func (p *JSONPresenter) RenderKey(key *KeyView) error {
	return p.encoder.Encode(key)
}

// RenderDoctor renders the doctor check results as JSON.
func (p *JSONPresenter) RenderDoctor(result *DoctorView) error {
	return p.encoder.Encode(result)
}

// RenderConfig renders the configuration as JSON.
func (p *JSONPresenter) RenderConfig(config *ConfigView) error {
	return p.encoder.Encode(config)
}

// RenderError renders an error message as JSON.
func (p *JSONPresenter) RenderError(err error) error {
	output := struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	}
	return p.encoder.Encode(output)
}

// RenderMessage renders a simple message as JSON.
func (p *JSONPresenter) RenderMessage(message string) error {
	output := struct {
		Message string `json:"message"`
	}{
		Message: message,
	}
	return p.encoder.Encode(output)
}

// Ensure JSONPresenter implements Presenter
var _ Presenter = (*JSONPresenter)(nil)
