package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/kifetch/cmd/kifetch"
	"github.com/arthur-debert/kifetch/pkg/ui/styles"
)

func main() {
	rootCmd := kifetch.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Show the full help for the command that failed
		fmt.Fprintln(os.Stderr)
		_ = rootCmd.Help()

		os.Exit(1)
	}
}
