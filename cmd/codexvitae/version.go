// ABOUTME: CLI command printing the build version.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("codexvitae %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
