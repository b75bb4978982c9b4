// Package cli provides the command-line interface for pyscout.
package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/safedep/dry/log"
	"github.com/safedep/pyscout/config"
	"github.com/safedep/pyscout/internal/version"
	"github.com/safedep/pyscout/locator"
	"github.com/safedep/pyscout/tui"
	"github.com/spf13/cobra"
)

// App holds the application dependencies.
type App struct {
	Config     *config.Config
	Paths      *config.Paths
	ConfigFile string
	Presenter  tui.Presenter
	Prober     *locator.Prober
	Resolver   *locator.Resolver
	Enumerator *locator.Enumerator
}

// NewApp creates a new App writing to w.
func NewApp(cfg *config.Config, w io.Writer) *App {
	paths := config.ResolvePaths()

	prober := locator.NewProber(cfg.Probe.BinaryName)
	resolver := locator.DefaultResolver()
	if !cfg.Probe.SpawnInterpreter {
		resolver = locator.ConfigOnlyResolver()
	}

	presenter := tui.NewPresenter(tui.ParseFormat(globalFlags.Format), tui.PresenterOptions{
		Writer:    w,
		UseColors: cfg.ShouldUseColors(),
		Verbose:   globalFlags.Verbose,
	})

	configFile := globalFlags.ConfigPath
	if configFile == "" {
		configFile = paths.ConfigFile
	}

	return &App{
		Config:     cfg,
		Paths:      paths,
		ConfigFile: configFile,
		Presenter:  presenter,
		Prober:     prober,
		Resolver:   resolver,
		Enumerator: locator.NewEnumerator(prober, resolver),
	}
}

// probeContext bounds a command with the configured probe timeout.
func (a *App) probeContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.Config.Probe.Timeout > 0 {
		return context.WithTimeout(ctx, a.Config.Probe.Timeout)
	}
	return context.WithCancel(ctx)
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	NoColor    bool
	Format     string
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pyscout",
		Short: "Find Python interpreters and virtual environments",
		Long: `pyscout finds Python interpreters and virtual environments on disk.

It probes the standard venv layouts (bin/, Scripts/ and the environment root),
reads versions from pyvenv.cfg and only starts an interpreter when no
version is recorded.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("PYSCOUT_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&globalFlags.Format, "format", "f", "table", "output format: table, json, yaml")

	rootCmd.AddCommand(
		NewScanCmd(),
		NewProbeCmd(),
		NewResolveCmd(),
		NewKeyCmd(),
		NewDoctorCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupInternalLogger sets up the DRY logger.
func setupInternalLogger() {
	// Command output goes to stdout, keep diagnostics out of it.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	log.Init("pyscout", "cli")
}

// loadApp loads the configuration and builds the App. A config file given
// explicitly must be valid when it exists; otherwise problems fall back to
// the built-in defaults.
func loadApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		if globalFlags.ConfigPath != "" && !errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfig("failed to load config", err)
		}
		log.Warnf("using default configuration: %v", err)
		cfg = config.Default()
	}

	return newAppWithFlags(cmd, cfg), nil
}

// loadAppOrDefault is loadApp for commands that must work with a broken
// config file, such as config reset.
func loadAppOrDefault(cmd *cobra.Command) *App {
	app, err := loadApp(cmd)
	if err != nil {
		log.Warnf("ignoring invalid configuration: %v", err)
		return newAppWithFlags(cmd, config.Default())
	}
	return app
}

func newAppWithFlags(cmd *cobra.Command, cfg *config.Config) *App {
	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	return NewApp(cfg, cmd.OutOrStdout())
}
