package main

import (
	"os"

	"github.com/devgenius/devgenius/internal/server"
)

// AppAssets can be set at build time to force an asset-loading strategy.
// Example: go build -ldflags "-X 'main.AppAssets=embed'"
var AppAssets string

func main() {
	if AppAssets != "" {
		os.Setenv("APP_ASSETS", AppAssets)
	}
	// Create a new server instance.
	s := server.New()

	// Register all application routes and boot the modules.
	s.RegisterRoutes()

	// Start the server.
	s.Start()
}
