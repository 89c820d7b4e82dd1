// Version command for the persist CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/persist/pkg/persist"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the persist version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("persist", persist.Version)
	},
}
