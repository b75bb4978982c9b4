package tui

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLPresenter renders output as YAML.
type YAMLPresenter struct {
	w io.Writer
}

// NewYAMLPresenter creates a new YAML presenter.
func NewYAMLPresenter(opts PresenterOptions) *YAMLPresenter {
	return &YAMLPresenter{w: opts.Writer}
}

func (p *YAMLPresenter) encode(v any) error {
	encoder := yaml.NewEncoder(p.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// RenderScan renders the scan as YAML.
func (p *YAMLPresenter) RenderScan(scan *ScanView) error {
	return p.encode(scan)
}

// RenderProbe renders the probe result as YAML.
func (p *YAMLPresenter) RenderProbe(probe *ProbeView) error {
	return p.encode(probe)
}

// RenderResolve renders the resolve result as YAML.
func (p *YAMLPresenter) RenderResolve(resolve *ResolveView) error {
	return p.encode(resolve)
}

// RenderKey renders the key as YAML.
func (p *YAMLPresenter) RenderKey(key *KeyView) error {
	return p.encode(key)
}

// RenderDoctor renders the doctor check results as YAML.
func (p *YAMLPresenter) RenderDoctor(result *DoctorView) error {
	return p.encode(result)
}

// RenderConfig renders the configuration as YAML.
func (p *YAMLPresenter) RenderConfig(config *ConfigView) error {
	return p.encode(config)
}

// RenderError renders an error message as YAML.
func (p *YAMLPresenter) RenderError(err error) error {
	return p.encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as YAML.
func (p *YAMLPresenter) RenderMessage(message string) error {
	return p.encode(map[string]string{"message": message})
}

var _ Presenter = (*YAMLPresenter)(nil)
