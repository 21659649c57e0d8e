package register_test

import (
	"testing"

	"github.com/arthur-debert/mayamod/pkg/commands/register"
	"github.com/arthur-debert/mayamod/pkg/envstore"
	"github.com/arthur-debert/mayamod/pkg/searchpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	store := envstore.NewMemory()

	result, err := register.Register(register.RegisterOptions{
		Dir:      "/opt/sppaint3d",
		Variable: "MAYA_MODULE_PATH",
		Store:    store,
		Policy:   searchpath.PolicyExact,
	})
	require.NoError(t, err)

	assert.False(t, result.AlreadyPresent)
	assert.False(t, result.DryRun)
	assert.Equal(t, "/opt/sppaint3d", result.NewValue)

	stored, ok := store.Get("MAYA_MODULE_PATH")
	assert.True(t, ok)
	assert.Equal(t, "/opt/sppaint3d", stored)
}

func TestRegisterAlreadyPresent(t *testing.T) {
	store := envstore.NewMemory()
	require.NoError(t, store.Set("MAYA_MODULE_PATH", "/opt/sppaint3d"))

	result, err := register.Register(register.RegisterOptions{
		Dir:      "/opt/sppaint3d",
		Variable: "MAYA_MODULE_PATH",
		Store:    store,
		Policy:   searchpath.PolicyExact,
	})
	require.NoError(t, err)

	assert.True(t, result.AlreadyPresent)
	assert.Equal(t, result.OldValue, result.NewValue)
}

func TestRegisterDryRun(t *testing.T) {
	store := envstore.NewMemory()
	require.NoError(t, store.Set("MAYA_MODULE_PATH", "/opt/a"))

	result, err := register.Register(register.RegisterOptions{
		Dir:      "/opt/b",
		Variable: "MAYA_MODULE_PATH",
		Store:    store,
		Policy:   searchpath.PolicyExact,
		DryRun:   true,
	})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.False(t, result.AlreadyPresent)
	// The preview shows the would-be value
	assert.Equal(t, "/opt/a"+searchpath.Separator()+"/opt/b", result.NewValue)

	// Nothing was persisted
	stored, _ := store.Get("MAYA_MODULE_PATH")
	assert.Equal(t, "/opt/a", stored)
}
