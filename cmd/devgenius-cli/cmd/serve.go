package cmd

import (
	"github.com/spf13/cobra"

	"github.com/devgenius/devgenius/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the DevGenius web server",
	Long:  "Starts the web server on the configured port (APP_PORT, default 4173) and blocks until interrupted.",
	Run: func(cmd *cobra.Command, args []string) {
		s := server.New()
		s.RegisterRoutes()
		s.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
