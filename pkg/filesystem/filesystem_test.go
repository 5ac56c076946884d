package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS_ReadWrite(t *testing.T) {
	fsys := NewMemory()

	require.NoError(t, fsys.MkdirAll("/cfg/logos", 0755))
	require.NoError(t, fsys.WriteFile("/cfg/logos/arch.txt", []byte("/\\"), 0644))

	data, err := fsys.ReadFile("/cfg/logos/arch.txt")
	require.NoError(t, err)
	assert.Equal(t, "/\\", string(data))

	assert.True(t, IsFile(fsys, "/cfg/logos/arch.txt"))
	assert.False(t, IsFile(fsys, "/cfg/logos"))
	assert.True(t, Exists(fsys, "/cfg/logos"))
	assert.False(t, Exists(fsys, "/cfg/missing.txt"))
}

func TestAferoFS_ReadDirectoryFails(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/dir", 0755))

	_, err := fsys.ReadFile("/dir")
	assert.Error(t, err)
}

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	fsys := NewOS()
	path := filepath.Join(dir, "nested", "file.txt")

	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte("hello"), 0644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.True(t, IsFile(fsys, path))
}
