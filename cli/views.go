package cli

import (
	"github.com/safedep/pyscout/internal/inventory"
	"github.com/safedep/pyscout/locator"
	"github.com/safedep/pyscout/tui"
)

func environmentView(env locator.Environment) tui.EnvironmentView {
	key, _ := locator.EnvironmentKey(&env)
	return tui.EnvironmentView{
		Key:        key,
		Executable: env.Executable,
		Root:       env.Root,
		Version:    env.Version,
	}
}

func scanView(report *inventory.Report) *tui.ScanView {
	view := &tui.ScanView{
		ID:           report.ID,
		StartedAt:    report.StartedAt,
		Duration:     report.Duration,
		Directories:  make([]tui.DirectoryView, 0, len(report.Directories)),
		Environments: make([]tui.EnvironmentView, 0, len(report.Environments)),
		Duplicates:   report.Duplicates,
	}
	for _, d := range report.Directories {
		view.Directories = append(view.Directories, tui.DirectoryView{
			Path:         d.Path,
			Status:       string(d.Status),
			Environments: d.Environments,
			Error:        d.Error,
		})
	}
	for _, env := range report.Environments {
		view.Environments = append(view.Environments, environmentView(env))
	}
	return view
}
