package cli

import (
	"os"
	"os/exec"
	"strings"

	"github.com/safedep/pyscout/config"
	"github.com/safedep/pyscout/internal/inventory"
	"github.com/safedep/pyscout/locator"
	"github.com/safedep/pyscout/tui"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command.
func NewDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the pyscout setup",
		Long: `Diagnose the pyscout setup.

Performs various health checks:
- Config file exists and is valid
- Search paths exist and can be listed
- The interpreter name used for probing
- An interpreter is available on PATH when spawning is enabled
- Environment managers found on PATH`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			view := &tui.DoctorView{AllOK: true}

			view.Checks = append(view.Checks, checkConfigFile(app.ConfigFile))
			for _, dir := range app.Config.SearchPaths() {
				view.Checks = append(view.Checks, checkSearchPath(dir))
			}

			view.Checks = append(view.Checks, tui.DoctorCheck{
				Name:        "Interpreter name",
				Description: "File name probed in each environment",
				Status:      tui.CheckOK,
				Message:     app.Prober.BinaryName,
			})

			if app.Config.Probe.SpawnInterpreter {
				pathCheck := tui.DoctorCheck{
					Name:        "Interpreter on PATH",
					Description: "Check if an interpreter can be started",
				}
				if exe, err := exec.LookPath(app.Prober.BinaryName); err != nil {
					pathCheck.Status = tui.CheckWarn
					pathCheck.Message = app.Prober.BinaryName + " not found on PATH"
					pathCheck.Suggestion = "Environments without a pyvenv.cfg version will be reported without one"
				} else {
					pathCheck.Status = tui.CheckOK
					pathCheck.Message = exe
				}
				view.Checks = append(view.Checks, pathCheck)
			}

			view.Checks = append(view.Checks, checkManagers(inventory.FindManagers(exec.LookPath, inventory.KnownManagers)))

			for _, c := range view.Checks {
				if c.Status == tui.CheckFail {
					view.AllOK = false
				}
			}

			return app.Presenter.RenderDoctor(view)
		},
	}

	return cmd
}

func checkConfigFile(path string) tui.DoctorCheck {
	check := tui.DoctorCheck{
		Name:        "Config file",
		Description: "Check if config file exists and is valid",
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		check.Status = tui.CheckWarn
		check.Message = "Config file not found (using defaults)"
		check.Suggestion = "Run 'pyscout config set' to create"
	} else if err != nil {
		check.Status = tui.CheckFail
		check.Message = "Cannot access config file: " + err.Error()
	} else if _, err := config.Load(path); err != nil {
		check.Status = tui.CheckFail
		check.Message = err.Error()
		check.Suggestion = "Run 'pyscout config reset' to restore defaults"
	} else {
		check.Status = tui.CheckOK
		check.Message = path
	}
	return check
}

func checkSearchPath(dir string) tui.DoctorCheck {
	check := tui.DoctorCheck{
		Name:        "Search path " + dir,
		Description: "Check if the search path can be listed",
	}
	if _, err := os.ReadDir(dir); os.IsNotExist(err) {
		check.Status = tui.CheckWarn
		check.Message = "Directory does not exist"
	} else if err != nil {
		check.Status = tui.CheckFail
		check.Message = "Cannot list directory: " + err.Error()
	} else {
		check.Status = tui.CheckOK
		check.Message = "Readable"
	}
	return check
}

func checkManagers(managers []locator.Manager) tui.DoctorCheck {
	check := tui.DoctorCheck{
		Name:        "Environment managers",
		Description: "Environment managers found on PATH",
		Status:      tui.CheckOK,
	}
	if len(managers) == 0 {
		check.Message = "None found"
		return check
	}

	found := make([]string, 0, len(managers))
	for _, m := range managers {
		found = append(found, m.Tool+" ("+locator.ManagerKey(&m)+")")
	}
	check.Message = strings.Join(found, ", ")
	return check
}
