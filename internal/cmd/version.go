package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via SetVersion.
var version = "dev"

// SetVersion records the build version injected by the linker.
func SetVersion(v string) {
	version = v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the switchboard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "switchboard version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
