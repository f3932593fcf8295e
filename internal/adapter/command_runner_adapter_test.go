package adapter

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// These tests drive LocalCommandRunner through sh rather than a real build tool.

func requireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestLocalCommandRunner_Run_Success(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	runner := NewLocalCommandRunner(0)

	out, err := runner.Run(context.Background(), m.Path(dir), []string{"sh", "-c", "pwd; echo built >&2"})
	require.NoError(t, err, out)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	assert.Contains(t, out, "built", "stderr is captured")
	assert.True(t,
		strings.Contains(out, dir) || strings.Contains(out, resolved),
		"command runs in the requested directory: %q", out,
	)
}

func TestLocalCommandRunner_Run_Failure(t *testing.T) {
	requireShell(t)

	runner := NewLocalCommandRunner(0)

	out, err := runner.Run(context.Background(), m.Path(t.TempDir()), []string{"sh", "-c", "echo no rule to make target; exit 3"})
	require.Error(t, err)
	assert.Equal(t, 3, ExitCode(err))
	assert.Contains(t, out, "no rule to make target")
}

func TestLocalCommandRunner_Run_Timeout(t *testing.T) {
	requireShell(t)

	runner := NewLocalCommandRunner(50 * time.Millisecond)

	start := time.Now()
	_, err := runner.Run(context.Background(), m.Path(t.TempDir()), []string{"sh", "-c", "sleep 5"})

	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestLocalCommandRunner_Run_CancelledContext(t *testing.T) {
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalCommandRunner(0).Run(ctx, m.Path(t.TempDir()), []string{"sh", "-c", "true"})
	require.Error(t, err)
}

func TestLocalCommandRunner_Run_NoArgs(t *testing.T) {
	_, err := NewLocalCommandRunner(0).Run(context.Background(), m.Path(t.TempDir()), nil)
	require.Error(t, err)
}

func TestLocalCommandRunner_Run_MissingBinary(t *testing.T) {
	_, err := NewLocalCommandRunner(0).Run(context.Background(), m.Path(t.TempDir()), []string{"mkaudit-no-such-binary"})
	require.Error(t, err)
	assert.Equal(t, 1, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(assert.AnError))
}
