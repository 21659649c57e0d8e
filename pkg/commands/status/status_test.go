package status_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/mayamod/pkg/commands/status"
	"github.com/arthur-debert/mayamod/pkg/envstore"
	"github.com/arthur-debert/mayamod/pkg/searchpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRegistered(t *testing.T) {
	store := envstore.NewMemory()
	value := strings.Join([]string{"/opt/a", "/opt/sppaint3d"}, searchpath.Separator())
	require.NoError(t, store.Set("MAYA_MODULE_PATH", value))

	result, err := status.Status(status.StatusOptions{
		Dir:      "/opt/sppaint3d",
		Variable: "MAYA_MODULE_PATH",
		Store:    store,
		Policy:   searchpath.PolicyExact,
	})
	require.NoError(t, err)

	assert.True(t, result.Registered)
	assert.Equal(t, "/opt/sppaint3d", result.Dir)
	assert.Equal(t, []string{"/opt/a", "/opt/sppaint3d"}, result.Entries)
}

func TestStatusNotRegistered(t *testing.T) {
	result, err := status.Status(status.StatusOptions{
		Dir:      "/opt/missing",
		Variable: "MAYA_MODULE_PATH",
		Store:    envstore.NewMemory(),
		Policy:   searchpath.PolicyExact,
	})
	require.NoError(t, err)

	assert.False(t, result.Registered)
	assert.Empty(t, result.Entries)
}
