package cli

import (
	"path/filepath"

	"github.com/safedep/pyscout/config"
	"github.com/safedep/pyscout/locator"
	"github.com/safedep/pyscout/tui"
	"github.com/spf13/cobra"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <interpreter>",
		Short: "Determine the version of an interpreter",
		Long: `Determine the version of an interpreter.

The version is read from the environment's pyvenv.cfg when present. The
interpreter is only started when no usable version line is found and
probe.spawn_interpreter is enabled.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			interpreter := filepath.Clean(config.ExpandHome(args[0]))

			ctx, cancel := app.probeContext(cmd)
			defer cancel()

			view := &tui.ResolveView{
				Interpreter: interpreter,
				Sources:     app.Resolver.Sources(),
			}
			if cfgPath, ok := locator.FindConfigPath(interpreter); ok {
				view.ConfigPath = cfgPath
			}

			version, source, ok := app.Resolver.ResolveWithSource(ctx, interpreter)
			view.Found = ok
			view.Version = version
			view.Source = source

			if err := app.Presenter.RenderResolve(view); err != nil {
				return err
			}

			if !ok {
				return ErrNotFound("could not determine the version of " + interpreter)
			}

			return nil
		},
	}

	return cmd
}
