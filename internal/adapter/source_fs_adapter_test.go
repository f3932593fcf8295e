package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

func TestLocalFSAdapter_Canonical(t *testing.T) {
	adapter := NewLocalFSAdapter()
	root := resolvedTempDir(t)

	target := filepath.Join(root, "src", "a.c")
	writeTestFile(t, target, "int a;\n")

	link := filepath.Join(root, "link.c")
	require.NoError(t, os.Symlink(target, link))

	t.Run("resolves symlinks", func(t *testing.T) {
		got, err := adapter.Canonical(link)
		require.NoError(t, err)
		assert.Equal(t, m.Path(target), got)
	})

	t.Run("cleans dot segments", func(t *testing.T) {
		got, err := adapter.Canonical(filepath.Join(root, "src", "..", "src", "a.c"))
		require.NoError(t, err)
		assert.Equal(t, m.Path(target), got)
	})

	t.Run("keeps missing paths", func(t *testing.T) {
		missing := filepath.Join(root, "gone", "..", "gone.o")
		got, err := adapter.Canonical(missing)
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(root, "gone.o")), got)
	})

	t.Run("relative paths become absolute", func(t *testing.T) {
		got, err := adapter.Canonical(".")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(string(got)))
	})
}

func TestLocalFSAdapter_TouchAndModTime(t *testing.T) {
	adapter := NewLocalFSAdapter()
	path := filepath.Join(t.TempDir(), "a.c")
	writeTestFile(t, path, "content")

	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, adapter.Touch(m.Path(path), stamp))

	got, err := adapter.ModTime(m.Path(path))
	require.NoError(t, err)
	assert.True(t, stamp.Equal(got), "got %v", got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data), "touch leaves content alone")
}

func TestLocalFSAdapter_ModTime_Missing(t *testing.T) {
	_, err := NewLocalFSAdapter().ModTime(m.Path(filepath.Join(t.TempDir(), "missing.o")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLocalFSAdapter_Writable(t *testing.T) {
	adapter := NewLocalFSAdapter()
	dir := t.TempDir()

	writableFile := filepath.Join(dir, "w.c")
	writeTestFile(t, writableFile, "")
	assert.True(t, adapter.Writable(m.Path(writableFile)))

	assert.False(t, adapter.Writable(m.Path(filepath.Join(dir, "missing.c"))))

	if os.Geteuid() == 0 {
		t.Skip("root can write read-only files")
	}

	readOnly := filepath.Join(dir, "ro.h")
	writeTestFile(t, readOnly, "")
	require.NoError(t, os.Chmod(readOnly, 0o444))
	assert.False(t, adapter.Writable(m.Path(readOnly)))
}

func TestLocalFSAdapter_ExistsAndIsDir(t *testing.T) {
	adapter := NewLocalFSAdapter()
	dir := t.TempDir()
	file := filepath.Join(dir, "Makefile")
	writeTestFile(t, file, "all:\n")

	assert.True(t, adapter.Exists(m.Path(file)))
	assert.False(t, adapter.IsDir(m.Path(file)))
	assert.True(t, adapter.Exists(m.Path(dir)))
	assert.True(t, adapter.IsDir(m.Path(dir)))
	assert.False(t, adapter.Exists(m.Path(filepath.Join(dir, "build.ninja"))))
	assert.False(t, adapter.IsDir(m.Path(filepath.Join(dir, "build"))))
}

func TestLocalFSAdapter_RelPath(t *testing.T) {
	adapter := NewLocalFSAdapter()

	rel, err := adapter.RelPath("/src/proj", "/src/proj/build/a.o")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("build", "a.o")), rel)

	_, err = adapter.RelPath("/src/proj", "relative/a.o")
	require.Error(t, err)
}

func resolvedTempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	return dir
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}
