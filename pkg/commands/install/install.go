// Package install implements the install command: placing a rewritten copy
// of the module description file in the user's modules folder and
// registering the module and icon directories in the search path variables.
package install

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/mayamod/pkg/envstore"
	"github.com/arthur-debert/mayamod/pkg/logging"
	"github.com/arthur-debert/mayamod/pkg/modfile"
	"github.com/arthur-debert/mayamod/pkg/paths"
	"github.com/arthur-debert/mayamod/pkg/registrar"
	"github.com/arthur-debert/mayamod/pkg/searchpath"
)

// IconsDirName is the conventional icons folder inside a module directory.
const IconsDirName = "icons"

// InstallOptions contains options for the install command
type InstallOptions struct {
	// Dir is the module directory. Empty means the working directory.
	Dir string

	// ModulesDir is the user modules folder receiving the descriptor copy.
	ModulesDir string

	// ModulePathVar is the module search path variable.
	ModulePathVar string

	// IconPathVar is the icon search path variable.
	IconPathVar string

	// Store is the environment store to read and mutate.
	Store envstore.Store

	// Policy is the entry comparison policy.
	Policy searchpath.Policy

	// DryRun previews all steps without writing anything.
	DryRun bool
}

// InstallResult describes the performed (or previewed) installation.
type InstallResult struct {
	// ModuleName is the name field of the module descriptor.
	ModuleName string

	// Descriptor is the source .mod file that was found.
	Descriptor string

	// InstalledPath is the descriptor's destination in the modules folder.
	InstalledPath string

	// Module is the search path registration outcome for the module dir.
	Module *registrar.Result

	// Icons is the registration outcome for the icons dir, nil when the
	// module ships no icons folder.
	Icons *registrar.Result

	// DryRun is true when nothing was written.
	DryRun bool
}

// Install performs the full module installation.
func Install(opts InstallOptions) (*InstallResult, error) {
	logger := logging.GetLogger("commands.install")

	dir, err := paths.NormalizeInstallDir(opts.Dir)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("dir", dir).
		Str("modulesDir", opts.ModulesDir).
		Bool("dryRun", opts.DryRun).
		Msg("Starting install command")

	// Installation aborts when the module ships no descriptor
	descriptor, err := modfile.FindDescriptor(dir)
	if err != nil {
		return nil, err
	}

	mod, err := modfile.Load(descriptor)
	if err != nil {
		return nil, err
	}

	result := &InstallResult{
		ModuleName:    mod.ModuleName(),
		Descriptor:    descriptor,
		InstalledPath: filepath.Join(opts.ModulesDir, filepath.Base(descriptor)),
		DryRun:        opts.DryRun,
	}

	reg := registrar.New(opts.Store, opts.Policy)
	ensure := reg.Ensure
	if opts.DryRun {
		ensure = reg.Preview
	}

	if !opts.DryRun {
		if err := mod.SetModulePath(dir); err != nil {
			return nil, err
		}
		if err := mod.Save(result.InstalledPath); err != nil {
			return nil, err
		}
		logger.Info().
			Str("module", result.ModuleName).
			Str("dest", result.InstalledPath).
			Msg("Installed module description file")
	}

	if result.Module, err = ensure(opts.ModulePathVar, dir); err != nil {
		return nil, err
	}

	iconsDir := filepath.Join(dir, IconsDirName)
	if info, statErr := os.Stat(iconsDir); statErr == nil && info.IsDir() {
		if result.Icons, err = ensure(opts.IconPathVar, iconsDir); err != nil {
			return nil, err
		}
	}

	return result, nil
}
