package cli

import (
	"github.com/safedep/pyscout/tui"
	"github.com/spf13/cobra"
)

// runWithSpinner shows a spinner on the command's stderr while fn runs.
// It stays silent for machine-readable formats.
func runWithSpinner[T any](cmd *cobra.Command, message string, fn func() (T, error)) (T, error) {
	if tui.ParseFormat(globalFlags.Format) != tui.FormatTable {
		return fn()
	}
	return tui.RunWithSpinner(message, fn, tui.WithWriter(cmd.ErrOrStderr()))
}
