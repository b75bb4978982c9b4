package cli

import (
	"fmt"

	"github.com/safedep/pyscout/config"
	"github.com/safedep/pyscout/tui"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify configuration",
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigResetCmd(),
	)

	return cmd
}

func loadConfigManager(cmd *cobra.Command) (*App, *config.Manager, error) {
	app := loadAppOrDefault(cmd)

	m, err := config.NewManager(app.ConfigFile)
	if err != nil {
		return nil, nil, ErrConfig("failed to open config", err)
	}

	return app, m, nil
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, m, err := loadConfigManager(cmd)
			if err != nil {
				return err
			}

			return app.Presenter.RenderConfig(&tui.ConfigView{
				Location: m.ConfigPath(),
				Values:   m.AllSettings(),
			})
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, m, err := loadConfigManager(cmd)
			if err != nil {
				return err
			}

			if !m.HasKey(args[0]) {
				return ErrConfig("unknown config key", fmt.Errorf("%s", args[0]))
			}

			return app.Presenter.RenderMessage(fmt.Sprintf("%v", m.Get(args[0])))
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

Booleans are written as true/false and lists as [a, b].`,
		Example: `  pyscout config set probe.spawn_interpreter false
  pyscout config set search.paths "[~/.virtualenvs, /srv/venvs]"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, m, err := loadConfigManager(cmd)
			if err != nil {
				return err
			}

			if err := m.Set(args[0], config.ParseValue(args[1])); err != nil {
				return ErrConfig("failed to set "+args[0], err)
			}

			return app.Presenter.RenderMessage(fmt.Sprintf("Set %s in %s", args[0], m.ConfigPath()))
		},
	}
}

func newConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the config file and use defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, m, err := loadConfigManager(cmd)
			if err != nil {
				return err
			}

			if err := m.Reset(); err != nil {
				return ErrConfig("failed to reset config", err)
			}

			return app.Presenter.RenderMessage("Configuration reset to defaults")
		},
	}
}
