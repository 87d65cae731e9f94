// Package main is the entry point for the extmake CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/adminkit/extmake/internal/cmd"
	oerrors "github.com/adminkit/extmake/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) && exitErr.Printed {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
