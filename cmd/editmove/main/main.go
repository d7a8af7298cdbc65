package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/edit-move/cmd/editmove"
	"github.com/arthur-debert/edit-move/pkg/errors"
	"github.com/arthur-debert/edit-move/pkg/style"
)

func main() {
	rootCmd := editmove.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.IsCancellation(err) {
			fmt.Fprintln(os.Stderr, style.Render("Error", fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(errors.ExitCode(err))
	}
}
