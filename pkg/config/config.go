// Package config loads the optional mayamod configuration file.
//
// Everything has a working default; the file only exists to override the
// variable names, the modules folder, or the entry comparison policy.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/mayamod/pkg/errors"
	"github.com/arthur-debert/mayamod/pkg/logging"
	"github.com/arthur-debert/mayamod/pkg/searchpath"
)

// Default environment variable names consulted by Maya.
const (
	// DefaultModulePathVar is the module search path variable
	DefaultModulePathVar = "MAYA_MODULE_PATH"

	// DefaultIconPathVar is the icon search path variable
	DefaultIconPathVar = "XBMLANGPATH"
)

// Config holds the user-tunable settings.
type Config struct {
	// ModulePathVar overrides the module search path variable name.
	ModulePathVar string `toml:"module_path_var"`

	// IconPathVar overrides the icon search path variable name.
	IconPathVar string `toml:"icon_path_var"`

	// ModulesDir overrides the user modules folder for install.
	ModulesDir string `toml:"modules_dir"`

	// Compare selects the entry comparison policy: exact, fold or clean.
	Compare string `toml:"compare"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ModulePathVar: DefaultModulePathVar,
		IconPathVar:   DefaultIconPathVar,
		Compare:       string(searchpath.PolicyFold),
	}
}

// Load reads the configuration file at path, layered over the defaults.
// A missing file is not an error, the defaults apply as-is.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debug().Str("path", path).Msg("No config file, using defaults")
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}

	// Empty overrides fall back to the defaults
	if cfg.ModulePathVar == "" {
		cfg.ModulePathVar = DefaultModulePathVar
	}
	if cfg.IconPathVar == "" {
		cfg.IconPathVar = DefaultIconPathVar
	}

	if _, err := searchpath.ParsePolicy(cfg.Compare); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Msg("Loaded config file")
	return cfg, nil
}

// Policy returns the configured comparison policy.
func (c *Config) Policy() searchpath.Policy {
	policy, err := searchpath.ParsePolicy(c.Compare)
	if err != nil {
		// Load validates the value; an invalid one here means the Config
		// was built by hand, fall back to the default.
		return searchpath.PolicyFold
	}
	return policy
}
