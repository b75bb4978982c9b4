package cli

import (
	"path/filepath"

	"github.com/safedep/pyscout/config"
	"github.com/safedep/pyscout/tui"
	"github.com/spf13/cobra"
)

// NewProbeCmd creates the probe command.
func NewProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <env-root>",
		Short: "Find the interpreter of one environment",
		Long: `Find the interpreter of one environment.

Checks <env-root>/bin, <env-root>/Scripts and <env-root> in that order and
resolves the version of the first interpreter found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			root := filepath.Clean(config.ExpandHome(args[0]))

			ctx, cancel := app.probeContext(cmd)
			defer cancel()

			view := &tui.ProbeView{
				Root:       root,
				Candidates: app.Prober.Candidates(root),
			}

			env, ok := app.Enumerator.Probe(ctx, root)
			if ok {
				ev := environmentView(env)
				view.Found = true
				view.Environment = &ev
			}

			if err := app.Presenter.RenderProbe(view); err != nil {
				return err
			}

			if !ok {
				return ErrNotFound("no interpreter found in " + root)
			}

			return nil
		},
	}

	return cmd
}
