package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set by the release build; it stays "dev" for local builds.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the schemasync version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("schemasync " + Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
