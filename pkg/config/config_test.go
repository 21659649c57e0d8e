package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mayamod/pkg/config"
	"github.com/arthur-debert/mayamod/pkg/envstore"
	"github.com/arthur-debert/mayamod/pkg/errors"
	"github.com/arthur-debert/mayamod/pkg/registrar"
	"github.com/arthur-debert/mayamod/pkg/searchpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "MAYA_MODULE_PATH", cfg.ModulePathVar)
	assert.Equal(t, "XBMLANGPATH", cfg.IconPathVar)
	assert.Equal(t, "", cfg.ModulesDir)
	assert.Equal(t, searchpath.PolicyFold, cfg.Policy())
}

func TestDefaultPolicyRecognizesCaseVariant(t *testing.T) {
	// The default comparison is case-insensitive: re-registering the same
	// directory with different casing must be a no-op, not a duplicate.
	store := envstore.NewMemory()
	require.NoError(t, store.Set("MAYA_MODULE_PATH", "/opt/sppaint3d"))

	reg := registrar.New(store, config.Default().Policy())
	result, err := reg.Ensure("MAYA_MODULE_PATH", "/opt/SPPAINT3D")
	require.NoError(t, err)

	assert.True(t, result.AlreadyPresent)
	stored, _ := store.Get("MAYA_MODULE_PATH")
	assert.Equal(t, "/opt/sppaint3d", stored)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
module_path_var = "CUSTOM_MODULE_PATH"
modules_dir = "/srv/maya/modules"
compare = "clean"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "CUSTOM_MODULE_PATH", cfg.ModulePathVar)
	// Unset keys keep their defaults
	assert.Equal(t, "XBMLANGPATH", cfg.IconPathVar)
	assert.Equal(t, "/srv/maya/modules", cfg.ModulesDir)
	assert.Equal(t, searchpath.PolicyClean, cfg.Policy())
}

func TestLoadInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("module_path_var = [broken"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadInvalidPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`compare = "fuzzy"`), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}
