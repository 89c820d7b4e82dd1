// Package main provides the persist CLI, a thin wrapper around the
// persist library for storing and inspecting per-application state.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
