package adapter

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

const sampleTrace = `{
  "files": [
    {"id": 1, "name": "/src/a.c", "exists": true},
    {"id": 2, "name": "/src/build/a.o", "exists": true, "deps": [3]},
    {"id": 3, "name": "/src/build/a.o.bak", "exists": false},
    {"id": 4, "name": "/usr/bin/cc", "exists": true}
  ],
  "procs": [
    {"uid": 7, "parent": 1, "image": 4, "cwd": "/src/build", "input": [1], "output": [2]}
  ]
}`

func TestJSONTraceStore_LoadTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	writeTestFile(t, path, sampleTrace)

	trace, err := NewJSONTraceStore().LoadTrace(m.Path(path))
	require.NoError(t, err)

	require.Len(t, trace.Files, 4)
	require.Len(t, trace.Procs, 1)

	proc := trace.Procs[0]
	require.NotNil(t, proc.Image)
	assert.Equal(t, uint64(4), *proc.Image)
	assert.Equal(t, []uint64{1}, proc.Input)
	assert.Equal(t, []uint64{2}, proc.Output)
	assert.Equal(t, []uint64{3}, trace.Files[1].Deps)

	name, ok := trace.FileName(2)
	assert.True(t, ok)
	assert.Equal(t, "/src/build/a.o", name)

	_, ok = trace.FileName(99)
	assert.False(t, ok)
}

func TestJSONTraceStore_LoadTrace_NoImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	writeTestFile(t, path, `{"files": [], "procs": [{"uid": 1, "parent": 0}]}`)

	trace, err := NewJSONTraceStore().LoadTrace(m.Path(path))
	require.NoError(t, err)
	require.Len(t, trace.Procs, 1)
	assert.Nil(t, trace.Procs[0].Image)
}

func TestJSONTraceStore_LoadTrace_Errors(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "bad.json")
	writeTestFile(t, malformed, `{"files": [`)

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"malformed json", malformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJSONTraceStore().LoadTrace(m.Path(tt.path))
			require.Error(t, err)
			assert.True(t, errors.Is(err, m.ErrUnreadableTrace))
		})
	}
}
