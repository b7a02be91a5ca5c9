package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sol25 version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sol25 version %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
