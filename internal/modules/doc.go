// Package modules contains all self-contained application features.
//
// Each subdirectory is a module that should implement the `module.Module` interface.
// Modules are assembled in `internal/app/modules.go` and are loaded by the
// application at startup.
package modules
