package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by -ldflags at release time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the etude version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Printf("etude %s\n", version)
	},
}
