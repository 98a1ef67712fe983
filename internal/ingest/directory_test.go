package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.pdf"))
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "notes.md"))
	touch(t, filepath.Join(dir, ".hidden.pdf"))
	touch(t, filepath.Join(dir, ".cache", "c.pdf"))
	touch(t, filepath.Join(dir, "sub", "d.PDF"))

	paths, err := ListFiles(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "sub", "d.PDF"),
	}, paths)
}

func TestListFiles_EmptyRoot(t *testing.T) {
	_, err := ListFiles("  ", nil)
	assert.Error(t, err)
}
