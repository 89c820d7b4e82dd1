// Get command for the persist CLI.
package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <application>",
	Short: "Print the stored state value for an application",
	Long: `Print the stored state value and its timestamp. When no state file
exists yet, prints the null state with a fresh timestamp.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newStore(args[0]).Load()
		if err != nil {
			return err
		}
		out, err := json.Marshal(env.IntoState())
		if err != nil {
			return err
		}
		cmd.Printf("%s\t%s\n", env.Timestamp.Format(time.RFC3339), out)
		return nil
	},
}
