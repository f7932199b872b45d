// Package main is the entry point for the uskit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/uskit/cli/internal/cmd"
	oerrors "github.com/uskit/cli/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
