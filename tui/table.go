package tui

import (
	"fmt"
	"io"
	"sort"
)

// TablePresenter renders output in table format.
type TablePresenter struct {
	w         io.Writer
	color     *Colorizer
	verbose   bool
	termWidth int
}

// NewTablePresenter creates a new table presenter.
func NewTablePresenter(opts PresenterOptions) *TablePresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = TerminalWidth(opts.Writer)
	}
	return &TablePresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		verbose:   opts.Verbose,
		termWidth: termWidth,
	}
}

// RenderScan renders the environments found by a scan.
func (p *TablePresenter) RenderScan(scan *ScanView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Title("Python environments"))
	tw.println()

	if len(scan.Environments) == 0 {
		tw.printf("  %s\n", p.color.Dim("No environments found."))
	} else {
		width := 10
		for _, env := range scan.Environments {
			if len(env.Version) > width {
				width = len(env.Version)
			}
		}
		tw.printf("  %s %s\n", p.color.Header(PadRight("VERSION", width)), p.color.Header("EXECUTABLE"))
		for _, env := range scan.Environments {
			tw.printf("  %s %s\n",
				p.color.Version(PadRight(OrDash(env.Version), width)),
				p.color.Path(env.Executable))
		}
	}
	tw.println()

	tw.printf("%s\n", p.color.Header("Directories"))
	for i, dir := range scan.Directories {
		prefix := TreePrefix(i == len(scan.Directories)-1)
		switch dir.Status {
		case "scanned":
			tw.printf("  %s%s %s %s\n", prefix, p.color.StatusOK(), p.color.Path(dir.Path),
				p.color.Dim(Plural(dir.Environments, "environment", "environments")))
		case "missing":
			tw.printf("  %s%s %s %s\n", prefix, p.color.StatusSkip(), dir.Path, p.color.Dim("not found"))
		default:
			tw.printf("  %s%s %s\n", prefix, p.color.StatusFail(), dir.Path)
			if p.verbose && dir.Error != "" {
				tw.printf("        %s\n", p.color.Error(dir.Error))
			}
		}
	}
	tw.println()

	summary := fmt.Sprintf("%s in %s",
		Plural(len(scan.Environments), "environment", "environments"),
		FormatDuration(scan.Duration))
	if scan.Duplicates > 0 {
		summary += fmt.Sprintf(" (%d duplicate skipped)", scan.Duplicates)
	}
	tw.printf("%s\n", p.color.Number(summary))
	if p.verbose {
		tw.printf("%s\n", p.color.Dim("scan "+FormatShortID(scan.ID)+" started "+FormatTime(scan.StartedAt)))
	}

	return tw.Err()
}

// RenderProbe renders the probe of one environment root.
func (p *TablePresenter) RenderProbe(probe *ProbeView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Title("Probe "+probe.Root))
	if p.verbose || !probe.Found {
		tw.printf("%s\n", p.color.Header("Candidates"))
		for i, c := range probe.Candidates {
			tw.printf("  %s%s\n", TreePrefix(i == len(probe.Candidates)-1), c)
		}
	}

	if !probe.Found || probe.Environment == nil {
		tw.printf("%s\n", p.color.Warning("No interpreter found."))
		return tw.Err()
	}

	env := probe.Environment
	tw.field("Executable", p.color.Path(env.Executable))
	tw.field("Version", p.color.Version(OrDash(env.Version)))
	tw.field("Key", env.Key)

	return tw.Err()
}

// RenderResolve renders a version resolution.
func (p *TablePresenter) RenderResolve(resolve *ResolveView) error {
	tw := &tableWriter{w: p.w}

	tw.field("Interpreter", p.color.Path(resolve.Interpreter))
	if !resolve.Found {
		tw.field("Version", p.color.Warning("unknown"))
	} else {
		tw.field("Version", p.color.Version(resolve.Version))
		tw.field("Source", resolve.Source)
	}
	if resolve.ConfigPath != "" {
		tw.field("Config", p.color.Path(resolve.ConfigPath))
	}
	if p.verbose {
		tw.field("Sources", resolve.Sources)
	}

	return tw.Err()
}

// RenderKey renders a derived key.
func (p *TablePresenter) RenderKey(key *KeyView) error {
	tw := &tableWriter{w: p.w}
	if p.verbose {
		tw.printf("%s %s\n", key.Key, p.color.Dim("("+key.Kind+")"))
	} else {
		tw.printf("%s\n", key.Key)
	}
	return tw.Err()
}

// RenderDoctor renders the doctor check results.
func (p *TablePresenter) RenderDoctor(result *DoctorView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Header("Doctor"))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	for _, check := range result.Checks {
		var statusStr string
		switch check.Status {
		case CheckOK:
			statusStr = p.color.StatusOK()
		case CheckWarn:
			statusStr = p.color.Warning("[!!]")
		case CheckFail:
			statusStr = p.color.StatusFail()
		}

		tw.printf("  %s  %s\n", statusStr, check.Name)
		if check.Message != "" {
			tw.printf("        %s\n", check.Message)
		}
		if check.Suggestion != "" && check.Status != CheckOK {
			tw.printf("        %s\n", p.color.Dim(check.Suggestion))
		}
	}
	tw.println()

	if result.AllOK {
		tw.println(p.color.Success("All checks passed."))
	} else {
		tw.println(p.color.Warning("Some checks failed. See suggestions above."))
	}

	return tw.Err()
}

// RenderConfig renders the configuration.
func (p *TablePresenter) RenderConfig(config *ConfigView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Header("Configuration"))
	tw.printf("Location: %s\n", p.color.Path(config.Location))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	p.renderValues(tw, "", config.Values)

	return tw.Err()
}

func (p *TablePresenter) renderValues(tw *tableWriter, prefix string, values map[string]interface{}) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := values[k].(map[string]interface{}); ok {
			p.renderValues(tw, key, nested)
			continue
		}
		tw.printf("  %s = %v\n", p.color.Header(key), values[k])
	}
}

// RenderError renders an error message.
func (p *TablePresenter) RenderError(err error) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s %s\n", p.color.Error("Error:"), err.Error())
	return tw.Err()
}

// RenderMessage renders a simple message.
func (p *TablePresenter) RenderMessage(message string) error {
	tw := &tableWriter{w: p.w}
	tw.println(message)
	return tw.Err()
}

var _ Presenter = (*TablePresenter)(nil)
