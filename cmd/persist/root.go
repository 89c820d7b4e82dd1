// Root command and global flags for the persist CLI.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/persist/pkg/persist"
)

// rootFlags holds global flag values shared by all subcommands.
type rootFlags struct {
	qualifier    string
	organization string
	compact      bool
}

var flags rootFlags

var rootCmd = &cobra.Command{
	Use:   "persist",
	Short: "Store and inspect per-application state files",
	Long: `Persist keeps one state value per application in the platform's
per-user configuration directory, wrapped with the time it was written.`,
	SilenceUsage: true,
}

func init() {
	// Assigned here rather than in the composite literal: the closure
	// reaches applyEnvOverrides, which reads rootCmd's flags, and the
	// two package-level initializers would otherwise form a cycle.
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		applyEnvOverrides()
	}

	rootCmd.PersistentFlags().StringVar(&flags.qualifier, "qualifier", "", "identity qualifier (e.g. com)")
	rootCmd.PersistentFlags().StringVar(&flags.organization, "organization", "", "identity organization")
	rootCmd.PersistentFlags().BoolVar(&flags.compact, "compact", false, "write compact output instead of pretty")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(versionCmd)
}

// applyEnvOverrides fills unset global flags from PERSIST_* environment
// variables. Flags win over environment values.
func applyEnvOverrides() {
	v := viper.New()
	v.SetEnvPrefix("persist")
	v.AutomaticEnv()

	pf := rootCmd.PersistentFlags()
	if !pf.Changed("qualifier") && v.IsSet("qualifier") {
		flags.qualifier = v.GetString("qualifier")
	}
	if !pf.Changed("organization") && v.IsSet("organization") {
		flags.organization = v.GetString("organization")
	}
	if !pf.Changed("compact") && v.IsSet("compact") {
		flags.compact = v.GetBool("compact")
	}
}

// newStore builds the coordinator for application from the global
// flags. The CLI stores arbitrary JSON-shaped values, so T is any.
func newStore(application string) *persist.Persist[any] {
	b := persist.NewBuilder[any](application).
		WithQualifier(flags.qualifier).
		WithOrganization(flags.organization)
	if flags.compact {
		b = b.Compact()
	}
	return b.Build()
}
