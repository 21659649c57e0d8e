// Package registrar implements the one operation this tool exists for:
// making sure a directory is an entry of a search-path environment variable
// at user scope.
package registrar

import (
	"github.com/arthur-debert/mayamod/pkg/envstore"
	"github.com/arthur-debert/mayamod/pkg/logging"
	"github.com/arthur-debert/mayamod/pkg/paths"
	"github.com/arthur-debert/mayamod/pkg/searchpath"
)

// Result describes the outcome of a registration check or mutation.
type Result struct {
	// Variable is the environment variable that was inspected.
	Variable string

	// Dir is the normalized directory that was checked or appended.
	Dir string

	// AlreadyPresent is true when no mutation was needed.
	AlreadyPresent bool

	// OldValue is the variable value before the operation (empty when unset).
	OldValue string

	// NewValue is the variable value after the operation. Equal to OldValue
	// when AlreadyPresent is true or when no write was performed.
	NewValue string
}

// Registrar runs membership checks and appends against a Store.
type Registrar struct {
	store  envstore.Store
	policy searchpath.Policy
}

// New creates a Registrar using the given store and comparison policy.
func New(store envstore.Store, policy searchpath.Policy) *Registrar {
	return &Registrar{store: store, policy: policy}
}

// Ensure registers dir in the named variable unless an existing entry
// already matches it under the configured policy. Concurrent invocations
// race on the read-modify-write; this is accepted for a manual one-shot
// setup step.
func (r *Registrar) Ensure(variable, dir string) (*Result, error) {
	logger := logging.GetLogger("registrar")

	result, list, err := r.check(variable, dir)
	if err != nil {
		return nil, err
	}
	if result.AlreadyPresent {
		logger.Info().
			Str("variable", variable).
			Str("dir", result.Dir).
			Msg("Directory already registered")
		return result, nil
	}

	list.Append(result.Dir)
	result.NewValue = list.String()

	if err := r.store.Set(variable, result.NewValue); err != nil {
		return nil, err
	}

	logger.Info().
		Str("variable", variable).
		Str("dir", result.Dir).
		Msg("Directory registered")
	return result, nil
}

// Check reports whether dir is registered without mutating anything.
func (r *Registrar) Check(variable, dir string) (*Result, error) {
	result, _, err := r.check(variable, dir)
	return result, err
}

// Preview reports what Ensure would do without mutating anything. Unlike
// Check, a would-be append is reflected in NewValue.
func (r *Registrar) Preview(variable, dir string) (*Result, error) {
	result, list, err := r.check(variable, dir)
	if err != nil {
		return nil, err
	}
	if !result.AlreadyPresent {
		list.Append(result.Dir)
		result.NewValue = list.String()
	}
	return result, nil
}

// Entries returns the current entries of the named variable.
func (r *Registrar) Entries(variable string) []string {
	value, _ := r.store.Get(variable)
	return searchpath.Parse(value).Entries()
}

func (r *Registrar) check(variable, dir string) (*Result, *searchpath.List, error) {
	normalized, err := paths.NormalizeInstallDir(dir)
	if err != nil {
		return nil, nil, err
	}

	value, _ := r.store.Get(variable)
	list := searchpath.Parse(value)

	result := &Result{
		Variable:       variable,
		Dir:            normalized,
		AlreadyPresent: list.Contains(normalized, r.policy),
		OldValue:       value,
		NewValue:       value,
	}
	return result, list, nil
}
