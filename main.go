package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/safedep/pyscout/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			fmt.Fprint(os.Stderr, coder.Message())
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitGeneral)
	}
}
