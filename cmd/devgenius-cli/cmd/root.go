package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devgenius-cli",
	Short: "DevGenius CLI tool",
	Long: `DevGenius CLI is a command-line interface for the DevGenius site.

Available commands:
  serve      Run the web server
  routes     Print the route table
  version    Print the release version

Use "devgenius-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
