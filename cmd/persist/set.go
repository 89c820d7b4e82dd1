// Set command for the persist CLI.
package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <application> <value>",
	Short: "Store a state value for an application",
	Long: `Store a state value for an application, overwriting any prior value.
The value is interpreted as a JSON document; input that does not parse
as JSON is stored as a plain string.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newStore(args[0]).Store(parseValue(args[1]))
	},
}

// parseValue interprets raw as a JSON document, falling back to the
// raw string when it does not parse.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
