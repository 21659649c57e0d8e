package envstore_test

import (
	"testing"

	"github.com/arthur-debert/mayamod/pkg/envstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := envstore.NewMemory()

	_, ok := store.Get("MAYA_MODULE_PATH")
	assert.False(t, ok)

	require.NoError(t, store.Set("MAYA_MODULE_PATH", "/opt/maya/modules"))

	value, ok := store.Get("MAYA_MODULE_PATH")
	assert.True(t, ok)
	assert.Equal(t, "/opt/maya/modules", value)

	// Overwrite
	require.NoError(t, store.Set("MAYA_MODULE_PATH", "/other"))
	value, _ = store.Get("MAYA_MODULE_PATH")
	assert.Equal(t, "/other", value)
}

func TestProcessStore(t *testing.T) {
	store := envstore.NewProcess()

	t.Setenv("MAYAMOD_TEST_VAR", "initial")
	value, ok := store.Get("MAYAMOD_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "initial", value)

	require.NoError(t, store.Set("MAYAMOD_TEST_VAR", "changed"))
	value, _ = store.Get("MAYAMOD_TEST_VAR")
	assert.Equal(t, "changed", value)
}
