// Package status implements the status command: a read-only report of
// whether a directory is registered, plus the full search path contents.
package status

import (
	"github.com/arthur-debert/mayamod/pkg/envstore"
	"github.com/arthur-debert/mayamod/pkg/logging"
	"github.com/arthur-debert/mayamod/pkg/registrar"
	"github.com/arthur-debert/mayamod/pkg/searchpath"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	// Dir is the directory to check. Empty means the working directory.
	Dir string

	// Variable is the search path variable to inspect.
	Variable string

	// Store is the environment store to read.
	Store envstore.Store

	// Policy is the entry comparison policy.
	Policy searchpath.Policy
}

// StatusResult is the read-only registration report.
type StatusResult struct {
	// Variable is the inspected environment variable.
	Variable string

	// Dir is the normalized directory that was checked.
	Dir string

	// Registered is true when an entry matches Dir under the policy.
	Registered bool

	// Entries are the current search path entries, in order.
	Entries []string
}

// Status reports the registration state of opts.Dir without mutating anything.
func Status(opts StatusOptions) (*StatusResult, error) {
	logger := logging.GetLogger("commands.status")
	logger.Debug().
		Str("dir", opts.Dir).
		Str("variable", opts.Variable).
		Msg("Starting status command")

	reg := registrar.New(opts.Store, opts.Policy)
	check, err := reg.Check(opts.Variable, opts.Dir)
	if err != nil {
		return nil, err
	}

	return &StatusResult{
		Variable:   opts.Variable,
		Dir:        check.Dir,
		Registered: check.AlreadyPresent,
		Entries:    reg.Entries(opts.Variable),
	}, nil
}
