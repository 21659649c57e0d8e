// Package cli wires the pieces every subcommand needs: resolved paths, the
// loaded configuration and the user-scope environment store.
package cli

import (
	"github.com/arthur-debert/mayamod/pkg/config"
	"github.com/arthur-debert/mayamod/pkg/envstore"
	"github.com/arthur-debert/mayamod/pkg/paths"
	"github.com/arthur-debert/mayamod/pkg/searchpath"
)

// Runtime bundles the shared command dependencies.
type Runtime struct {
	Paths  *paths.Paths
	Config *config.Config
	Store  *envstore.User
}

// NewRuntime resolves paths, loads the optional config file and opens the
// user-scope store.
func NewRuntime() (*Runtime, error) {
	p, err := paths.New()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Paths:  p,
		Config: cfg,
		Store:  envstore.NewUser(p.ConfigDir()),
	}, nil
}

// Policy returns the configured comparison policy.
func (r *Runtime) Policy() searchpath.Policy {
	return r.Config.Policy()
}

// ModulesDir returns the user modules folder, honoring the config override.
func (r *Runtime) ModulesDir() (string, error) {
	if r.Config.ModulesDir != "" {
		return paths.ExpandHome(r.Config.ModulesDir)
	}
	return r.Paths.UserModulesDir(), nil
}
