// Path command for the persist CLI.
package main

import "github.com/spf13/cobra"

var pathCmd = &cobra.Command{
	Use:   "path <application>",
	Short: "Print the resolved state file path for an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := newStore(args[0]).Path()
		if err != nil {
			return err
		}
		cmd.Println(path)
		return nil
	},
}
