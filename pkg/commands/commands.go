// Package commands provides the high-level command implementations for
// mayamod, sitting between the CLI surface and the registrar/modfile
// machinery.
//
// Each command lives in its own subdirectory:
//   - register/ - Register command (check-then-append)
//   - install/  - Install command (descriptor copy + registration)
//   - status/   - Status command (read-only report)
//
// This file re-exports the command functions for callers that want a single
// import.
package commands

import (
	"github.com/arthur-debert/mayamod/pkg/commands/install"
	"github.com/arthur-debert/mayamod/pkg/commands/register"
	"github.com/arthur-debert/mayamod/pkg/commands/status"
)

// Register ensures a directory is an entry of the module search path.
type RegisterOptions = register.RegisterOptions

func Register(opts RegisterOptions) (*register.RegisterResult, error) {
	return register.Register(opts)
}

// Install places the module descriptor and registers the module directories.
type InstallOptions = install.InstallOptions

func Install(opts InstallOptions) (*install.InstallResult, error) {
	return install.Install(opts)
}

// Status reports the registration state without mutating anything.
type StatusOptions = status.StatusOptions

func Status(opts StatusOptions) (*status.StatusResult, error) {
	return status.Status(opts)
}
