package fileutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/staking-tools/eth2-deposit/shared/fileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdirAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, fileutil.MkdirAll(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())

	// Creating an existing 0700 directory again is fine.
	require.NoError(t, fileutil.MkdirAll(dir))
}

func TestMkdirAll_WrongPermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "open")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.Error(t, fileutil.MkdirAll(dir))
}

func TestWriteFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, fileutil.WriteFile(file, []byte("hello")))

	content, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Overwrite replaces the content and leaves no temp files behind.
	require.NoError(t, fileutil.WriteFile(file, []byte("replaced")))
	content, err = ioutil.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("replaced"), content)

	entries, err := ioutil.ReadDir(filepath.Dir(file))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteFile_WrongPermissions(t *testing.T) {
	file := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, ioutil.WriteFile(file, []byte("x"), 0644))
	require.Error(t, fileutil.WriteFile(file, []byte("y")))
}

func TestHasDirAndFileExists(t *testing.T) {
	dir := t.TempDir()
	exists, err := fileutil.HasDir(dir)
	require.NoError(t, err)
	assert.True(t, exists)

	missing := filepath.Join(dir, "missing")
	exists, err = fileutil.HasDir(missing)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.False(t, fileutil.FileExists(missing))

	file := filepath.Join(dir, "f")
	require.NoError(t, ioutil.WriteFile(file, []byte("x"), 0600))
	assert.True(t, fileutil.FileExists(file))
	exists, err = fileutil.HasDir(file)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExpandPath(t *testing.T) {
	expanded, err := fileutil.ExpandPath("/a/b/../c")
	require.NoError(t, err)
	assert.Equal(t, "/a/c", expanded)
}
