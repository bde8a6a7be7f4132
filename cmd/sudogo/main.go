package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scottrsm/sudogo/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands report their own structured output before returning
		// an ExitError; anything else comes from cobra (bad flags,
		// unknown commands) and still needs printing.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
