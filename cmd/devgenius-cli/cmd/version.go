package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devgenius/devgenius/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the DevGenius release version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("DevGenius v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
