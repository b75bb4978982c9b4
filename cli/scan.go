package cli

import (
	"path/filepath"

	"github.com/safedep/pyscout/config"
	"github.com/safedep/pyscout/internal/inventory"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory...]",
		Short: "Find virtual environments below directories",
		Long: `Find virtual environments below directories.

Every immediate child of each directory is probed for an interpreter in
bin/, Scripts/ or the child itself. Without arguments the configured
search paths (and $WORKON_HOME) are scanned.

Environments reachable from more than one directory are reported once.`,
		Example: `  pyscout scan
  pyscout scan ~/.virtualenvs ./envs
  pyscout scan --format json /srv/venvs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			dirs := app.Config.SearchPaths()
			if len(args) > 0 {
				dirs = make([]string, 0, len(args))
				for _, a := range args {
					dirs = append(dirs, filepath.Clean(config.ExpandHome(a)))
				}
			}

			ctx, cancel := app.probeContext(cmd)
			defer cancel()

			collector := inventory.NewCollector(app.Enumerator)
			report, err := runWithSpinner(cmd, "Scanning for Python environments...", func() (*inventory.Report, error) {
				return collector.Collect(ctx, dirs)
			})
			if err != nil {
				return ErrScanFailed("scan interrupted", err)
			}

			if err := app.Presenter.RenderScan(scanView(report)); err != nil {
				return err
			}

			if len(args) > 0 && report.Scanned() == 0 {
				return ErrScanFailed("none of the given directories could be scanned", nil)
			}

			return nil
		},
	}

	return cmd
}
