package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"receipt.jpg", true},
		{"receipt.jpeg", true},
		{"receipt.png", true},
		{"receipt.gif", true},
		{"receipt.bmp", true},
		{"RECEIPT.JPG", true},
		{"receipt.Png", true},
		{"receipt.pdf", false},
		{"receipt.txt", false},
		{"receipt", false},
		{"", false},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsImageFile(tc.path))
		})
	}
}

func TestListImageFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.jpg", "a.png", "notes.txt", "c.JPEG"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.jpg"), 0750))

	files, err := ListImageFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.png"),
		filepath.Join(dir, "b.jpg"),
		filepath.Join(dir, "c.JPEG"),
	}, files, "sorted, images only, directories skipped")
}

func TestListImageFilesEmptyDirectory(t *testing.T) {
	files, err := ListImageFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListImageFilesMissingDirectory(t *testing.T) {
	_, err := ListImageFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.txt")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "out.txt")

	require.NoError(t, WriteFile(path, []byte("content"), 0600))

	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
