// Package main is the entry point for the cza CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/create-zk-app/cza/internal/cmd"
	oerrors "github.com/create-zk-app/cza/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		// Check if the error carries an exit code
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already done it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Non-ExitError: unexpected, print it
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitFailure)
	}
}
