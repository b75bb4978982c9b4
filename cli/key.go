package cli

import (
	"os"
	"path/filepath"

	"github.com/safedep/pyscout/config"
	"github.com/safedep/pyscout/locator"
	"github.com/safedep/pyscout/tui"
	"github.com/spf13/cobra"
)

// NewKeyCmd creates the key command.
func NewKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key <path>",
		Short: "Print the identity key of an environment",
		Long: `Print the identity key of an environment.

<path> may be an interpreter or an environment root. The key is the
interpreter path when one is known and the environment root otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}

			path := filepath.Clean(config.ExpandHome(args[0]))

			info, err := os.Stat(path)
			if err != nil {
				return ErrNotFound("no such path: " + path)
			}

			var env locator.Environment
			if info.IsDir() {
				env.Root = path
				if exe, ok := app.Prober.FindInterpreter(path); ok {
					env.Executable = exe
				}
			} else {
				env.Executable = path
			}

			key, ok := locator.EnvironmentKey(&env)
			if !ok {
				return ErrNotFound("no key for " + path)
			}

			kind := "root"
			if env.Executable != "" {
				kind = "executable"
			}

			return app.Presenter.RenderKey(&tui.KeyView{
				Path: path,
				Key:  key,
				Kind: kind,
			})
		},
	}

	return cmd
}
