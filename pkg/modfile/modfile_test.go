package modfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mayamod/pkg/errors"
	"github.com/arthur-debert/mayamod/pkg/modfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAndFields(t *testing.T) {
	path := writeModFile(t, t.TempDir(), "sppaint3d.mod",
		"+ sppaint3d 1.0 ./\nscripts: scripts\nicons: icons\n")

	f, err := modfile.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sppaint3d", f.ModuleName())
	assert.Equal(t, "1.0", f.Version())
	assert.Equal(t, "./", f.ModulePath())
}

func TestLoadWithFlags(t *testing.T) {
	path := writeModFile(t, t.TempDir(), "tool.mod",
		"+ MAYAVERSION:2022 PLATFORM:win64 paintTool 2.1 C:/modules/paintTool\n")

	f, err := modfile.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "paintTool", f.ModuleName())
	assert.Equal(t, "2.1", f.Version())
	assert.Equal(t, "C:/modules/paintTool", f.ModulePath())
}

func TestSetModulePath(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		dir      string
		expected string
	}{
		{
			name:     "plain_descriptor",
			content:  "+ sppaint3d 1.0 ./\nscripts: scripts\n",
			dir:      "/opt/maya/sppaint3d",
			expected: "+ sppaint3d 1.0 /opt/maya/sppaint3d\nscripts: scripts\n",
		},
		{
			name:     "descriptor_with_flags",
			content:  "+ MAYAVERSION:2022 sppaint3d 1.0 ./\n",
			dir:      "/opt/sppaint3d",
			expected: "+ MAYAVERSION:2022 sppaint3d 1.0 /opt/sppaint3d\n",
		},
		{
			name:     "old_path_with_spaces_replaced",
			content:  "+ sppaint3d 1.0 C:/Program Files/sppaint3d\n",
			dir:      "/opt/sppaint3d",
			expected: "+ sppaint3d 1.0 /opt/sppaint3d\n",
		},
		{
			name:     "new_path_with_spaces",
			content:  "+ sppaint3d 1.0 ./\n",
			dir:      "/opt/my tools/sppaint3d",
			expected: "+ sppaint3d 1.0 /opt/my tools/sppaint3d\n",
		},
		{
			name:     "leading_comment_lines_kept",
			content:  "// sppaint3d module\n+ sppaint3d 1.0 ./\nicons: icons\n",
			dir:      "/opt/sppaint3d",
			expected: "// sppaint3d module\n+ sppaint3d 1.0 /opt/sppaint3d\nicons: icons\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeModFile(t, t.TempDir(), "m.mod", tt.content)

			f, err := modfile.Load(path)
			require.NoError(t, err)
			require.NoError(t, f.SetModulePath(tt.dir))
			assert.Equal(t, tt.expected, f.String())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeModFile(t, dir, "sppaint3d.mod", "+ sppaint3d 1.0 ./\nscripts: scripts\n")

	f, err := modfile.Load(path)
	require.NoError(t, err)
	require.NoError(t, f.SetModulePath("/opt/sppaint3d"))

	dest := filepath.Join(dir, "out", "sppaint3d.mod")
	require.NoError(t, f.Save(dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "+ sppaint3d 1.0 /opt/sppaint3d\nscripts: scripts\n", string(data))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := modfile.Load(filepath.Join(dir, "missing.mod"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrModFileNotFound))

	path := writeModFile(t, dir, "bad.mod", "scripts: scripts\nicons: icons\n")
	_, err = modfile.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrModFileParse))

	path = writeModFile(t, dir, "short.mod", "+ nameonly\n")
	f, loadErr := modfile.Load(path)
	require.NoError(t, loadErr)
	err = f.SetModulePath("/opt/x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrModFileParse))
}

func TestFindDescriptor(t *testing.T) {
	t.Run("single_match", func(t *testing.T) {
		dir := t.TempDir()
		path := writeModFile(t, dir, "anything.mod", "+ a 1.0 ./\n")

		found, err := modfile.FindDescriptor(dir)
		require.NoError(t, err)
		assert.Equal(t, path, found)
	})

	t.Run("prefers_dir_name_match", func(t *testing.T) {
		base := t.TempDir()
		dir := filepath.Join(base, "sppaint3d")
		require.NoError(t, os.MkdirAll(dir, 0755))
		writeModFile(t, dir, "aaa.mod", "+ a 1.0 ./\n")
		preferred := writeModFile(t, dir, "sppaint3d.mod", "+ sppaint3d 1.0 ./\n")

		found, err := modfile.FindDescriptor(dir)
		require.NoError(t, err)
		assert.Equal(t, preferred, found)
	})

	t.Run("none_found", func(t *testing.T) {
		_, err := modfile.FindDescriptor(t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrModFileNotFound))
	})
}
