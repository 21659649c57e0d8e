// Package register implements the register command: the idempotent
// check-then-append of a directory into the module search path variable.
package register

import (
	"github.com/arthur-debert/mayamod/pkg/envstore"
	"github.com/arthur-debert/mayamod/pkg/logging"
	"github.com/arthur-debert/mayamod/pkg/registrar"
	"github.com/arthur-debert/mayamod/pkg/searchpath"
)

// RegisterOptions contains options for the register command
type RegisterOptions struct {
	// Dir is the directory to register. Empty means the working directory.
	Dir string

	// Variable is the search path variable to register into.
	Variable string

	// Store is the environment store to read and mutate.
	Store envstore.Store

	// Policy is the entry comparison policy.
	Policy searchpath.Policy

	// DryRun previews the outcome without persisting anything.
	DryRun bool
}

// RegisterResult describes what happened (or would happen under dry-run).
type RegisterResult struct {
	registrar.Result

	// DryRun is true when nothing was persisted.
	DryRun bool
}

// Register ensures opts.Dir is an entry of opts.Variable.
func Register(opts RegisterOptions) (*RegisterResult, error) {
	logger := logging.GetLogger("commands.register")
	logger.Debug().
		Str("dir", opts.Dir).
		Str("variable", opts.Variable).
		Bool("dryRun", opts.DryRun).
		Msg("Starting register command")

	reg := registrar.New(opts.Store, opts.Policy)

	if opts.DryRun {
		result, err := reg.Preview(opts.Variable, opts.Dir)
		if err != nil {
			return nil, err
		}
		return &RegisterResult{Result: *result, DryRun: true}, nil
	}

	result, err := reg.Ensure(opts.Variable, opts.Dir)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{Result: *result}, nil
}
