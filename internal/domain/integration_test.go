package domain_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mkaudit.dev/pkg/mkaudit/internal/adapter"
	"mkaudit.dev/pkg/mkaudit/internal/controller"
	"mkaudit.dev/pkg/mkaudit/internal/domain"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// The Makefile forgets that x.o includes x.h.
const forgetfulMakefile = "all: x.o\n\n" +
	"x.o: ../src/x.c\n" +
	"\tcat ../src/x.c ../src/x.h > x.o\n\n" +
	"clean:\n" +
	"\trm -f x.o\n"

func TestWorkflow_Fuzz_RealMake(t *testing.T) {
	if _, err := exec.LookPath("make"); err != nil {
		t.Skip("make not available")
	}

	// Arrange
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	src := filepath.Join(root, "src")
	build := filepath.Join(root, "build")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.MkdirAll(build, 0o755))

	old := time.Now().Add(-2 * time.Hour)
	files := map[string]string{
		filepath.Join(root, "CMakeLists.txt"): "project(x C)\n",
		filepath.Join(build, "Makefile"):      forgetfulMakefile,
		filepath.Join(src, "x.c"):             "#include \"x.h\"\n",
		filepath.Join(src, "x.h"):             "int x;\n",
		filepath.Join(build, "x.o"):           "#include \"x.h\"\nint x;\n",
	}

	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		require.NoError(t, os.Chtimes(path, old, old))
	}

	built := old.Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(build, "x.o"), built, built))

	trace := m.Trace{
		Files: []m.TraceFile{
			{ID: 1, Name: filepath.Join(src, "x.c"), Exists: true},
			{ID: 2, Name: filepath.Join(src, "x.h"), Exists: true},
			{ID: 3, Name: filepath.Join(build, "x.o"), Exists: true},
		},
		Procs: []m.TraceProc{{UID: 1, Input: []uint64{1, 2}, Output: []uint64{3}}},
	}

	tracePath := filepath.Join(root, "trace.json")
	data, err := json.Marshal(trace)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tracePath, data, 0o644))

	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	reports := adapter.NewReportStore()
	wf := domain.NewWorkflow(
		adapter.NewLocalFSAdapter(),
		adapter.NewLocalCommandRunner(time.Minute),
		adapter.NewJSONTraceStore(),
		reports,
		controller.NewSimpleUI(cmd, controller.Options{}),
	)

	reportsDir := m.Path(filepath.Join(root, "reports"))

	// Act
	err = wf.Fuzz(context.Background(), domain.FuzzArgs{
		ProjectArgs: domain.ProjectArgs{Project: m.Path(root), Trace: m.Path(tracePath)},
		Reports:     reportsDir,
	})

	// Assert
	require.NoError(t, err, out.String())

	object := filepath.Join(build, "x.o")
	assert.Contains(t, out.String(), "[1/2] "+filepath.Join(src, "x.c")+":")
	assert.Contains(t, out.String(), "[2/2] "+filepath.Join(src, "x.h")+":")
	assert.Contains(t, out.String(), "  - "+object+"\n")
	assert.NotContains(t, out.String(), "  + ")

	report, err := reports.LoadReport(reportsDir, "")
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.False(t, report.Results[0].Divergent())
	assert.Equal(t, []m.Path{m.Path(object)}, report.Results[1].Under)
	assert.True(t, report.Results[1].Resynced)

	_, err = os.Stat(object)
	assert.NoError(t, err, "the clean rebuild must leave the object in place")
}
