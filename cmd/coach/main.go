// ABOUTME: Entry point for coach CLI.
// ABOUTME: Invokes the root Cobra command and prints failures.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗ %s", userMessage(err)))
		os.Exit(1)
	}
}
