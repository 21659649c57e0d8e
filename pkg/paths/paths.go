// Package paths provides centralized path handling for mayamod: user config
// and state locations, the per-user Maya modules folder, and install
// directory normalization.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/mayamod/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the config directory for mayamod
	EnvConfigDir = "MAYAMOD_CONFIG_DIR"

	// EnvModulesDir overrides the user Maya modules folder
	EnvModulesDir = "MAYAMOD_MODULES_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names. These define where mayamod keeps its own files
// and are not user-configurable.
const (
	// AppDirName is the directory name for mayamod-specific files
	AppDirName = "mayamod"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// EnvScriptName is the managed environment script sourced by the
	// user's shell profile on non-Windows hosts
	EnvScriptName = "env.sh"

	// MayaDirName is the per-user Maya settings folder name
	MayaDirName = "maya"

	// ModulesDirName is the modules folder inside the Maya settings folder
	ModulesDirName = "modules"
)

// Paths resolves the directories mayamod reads and writes.
type Paths struct {
	configDir  string
	modulesDir string
}

// New creates a Paths instance, honoring environment overrides.
func New() (*Paths, error) {
	p := &Paths{}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		expanded, err := ExpandHome(dir)
		if err != nil {
			return nil, err
		}
		p.configDir = expanded
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvModulesDir); dir != "" {
		expanded, err := ExpandHome(dir)
		if err != nil {
			return nil, err
		}
		p.modulesDir = expanded
	} else {
		dir, err := defaultModulesDir()
		if err != nil {
			return nil, err
		}
		p.modulesDir = dir
	}

	return p, nil
}

// ConfigDir returns the mayamod configuration directory.
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFilePath returns the path of the optional configuration file.
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// EnvScriptPath returns the path of the managed environment script.
func (p *Paths) EnvScriptPath() string {
	return filepath.Join(p.configDir, EnvScriptName)
}

// UserModulesDir returns the per-user Maya modules folder, where module
// descriptor files are installed. Maya only scans this folder when it lives
// inside the documents folder on Windows, hence the platform split.
func (p *Paths) UserModulesDir() string {
	return p.modulesDir
}

func defaultModulesDir() (string, error) {
	home, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(home, "Documents", MayaDirName, ModulesDirName), nil
	}
	return filepath.Join(home, MayaDirName, ModulesDirName), nil
}

// NormalizeInstallDir resolves dir to an absolute path with trailing
// separators and redundant segments removed. An empty dir resolves to the
// current working directory.
func NormalizeInstallDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		return wd, nil
	}

	expanded, err := ExpandHome(dir)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve absolute path for %s", dir)
	}
	return abs, nil
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment
// variable, and errors out rather than guessing a default.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory: neither os.UserHomeDir() nor HOME are available")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return GetHomeDirectory()
	}

	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, path[2:]), nil
	}

	return path, nil
}
