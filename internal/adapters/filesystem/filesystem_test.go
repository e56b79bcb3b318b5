package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_CreateAndReadFile(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "test.txt")

	f, err := fs.Create(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("hello world"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestAdapter_CreateTruncates(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/data/a.txt", []byte("content"), 0o644))
	fs := NewWithFs(memFs)

	f, err := fs.Create("/data/a.txt")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := fs.ReadFile("/data/a.txt")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestAdapter_MkdirAllAndLstat(t *testing.T) {
	fs := New()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, fs.MkdirAll(dir, 0o755))

	info, err := fs.Lstat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAdapter_LstatDoesNotFollowSymlinks(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "dirlink")
	require.NoError(t, os.Symlink(dir, link))

	info, err := New().Lstat(link)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}

func TestAdapter_LstatInMemory(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/direct", 0o755))

	info, err := NewWithFs(memFs).Lstat("/direct")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAdapter_Remove(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/x.txt", []byte("x"), 0o644))
	fs := NewWithFs(memFs)

	require.NoError(t, fs.Remove("/x.txt"))

	_, err := fs.Lstat("/x.txt")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))

	err = fs.Remove("/x.txt")
	require.Error(t, err)
}

func TestAdapter_ReadMissingFile(t *testing.T) {
	fs := NewWithFs(afero.NewMemMapFs())

	_, err := fs.ReadFile("/missing.txt")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
