package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

const (
	srcX  m.Path = "/proj/src/x.c"
	srcY  m.Path = "/proj/src/y.c"
	objA  m.Path = "/proj/build/a.o"
	objB  m.Path = "/proj/build/b.o"
	genH  m.Path = "/proj/build/gen.h"
	roSrc m.Path = "/proj/src/ro.c"
)

// declared is the graph the trace recorded for every scenario below.
func declared() *Graph {
	return NewGraph(map[m.Path][]m.Path{
		srcX: {objA},
		srcY: {objB},
	})
}

func twoObjectUniverse() m.Universe {
	return m.Universe{
		Inputs:  m.NewPathSet(srcX, srcY),
		Outputs: m.NewPathSet(objA, objB),
	}
}

func newTestAuditor(p *fakeProject, graph *Graph, universe m.Universe) *auditor {
	a := NewAuditor(p, graph, universe, p, NewSnapshotter(p, 2)).(*auditor)
	a.now = func() time.Time { return p.clock }

	return a
}

func TestAuditor_Run_ConsistentGraph(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {srcX},
		objB: {srcY},
	}, srcX, srcY)
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{}

	// Act
	err := a.Run(context.Background(), []m.Path{srcX, srcY}, obs)

	// Assert
	require.NoError(t, err)
	require.Len(t, obs.results, 2)
	assert.Equal(t, []m.Path{srcX, srcY}, obs.started)

	for _, r := range obs.results {
		assert.False(t, r.Divergent(), "candidate %s", r.Path)
		assert.False(t, r.Resynced)
		assert.Empty(t, r.Missing)
	}

	assert.Equal(t, []m.Path{objA}, obs.results[0].Modified)
	assert.Equal(t, []m.Path{objA}, obs.results[0].Expected)
	assert.Equal(t, 1, obs.results[0].Index)
	assert.Equal(t, 2, obs.results[0].Total)
	assert.Equal(t, 0, p.cleans)
}

func TestAuditor_Run_DeletedTemporaryIsNotAnOutput(t *testing.T) {
	// Arrange
	// The compiler image is not writable, so x.c is the only candidate.
	p := newFakeProject(map[m.Path][]m.Path{objA: {srcX}}, srcX)
	trace := assembleThroughTemp()

	graph, err := LoadGraph(trace, p)
	require.NoError(t, err)

	universe, err := LoadUniverse(trace, p)
	require.NoError(t, err)

	a := newTestAuditor(p, graph, universe)
	obs := &collector{}

	candidates, err := a.Candidates(nil)
	require.NoError(t, err)

	// Act
	err = a.Run(context.Background(), candidates, obs)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []m.Path{srcX}, obs.started)
	require.Len(t, obs.results, 1)

	r := obs.results[0]
	assert.False(t, r.Divergent())
	assert.False(t, r.Resynced)
	assert.Empty(t, r.Missing)
	assert.Equal(t, []m.Path{objA}, r.Expected)
	assert.Equal(t, 0, p.cleans)
}

func TestAuditor_Run_OverBuildIsReportedWithoutResync(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {srcX},
		objB: {srcX, srcY},
	}, srcX, srcY)
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{}

	// Act
	err := a.Run(context.Background(), []m.Path{srcX}, obs)

	// Assert
	require.NoError(t, err)
	require.Len(t, obs.results, 1)

	r := obs.results[0]
	assert.Equal(t, []m.Path{objB}, r.Over)
	assert.Empty(t, r.Under)
	assert.False(t, r.Resynced)
	assert.Equal(t, 0, p.cleans)
}

func TestAuditor_Run_MissingDependencyTriggersResync(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {},
		objB: {srcY},
	}, srcX, srcY)
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{}

	// Act
	err := a.Run(context.Background(), []m.Path{srcX}, obs)

	// Assert
	require.NoError(t, err)
	require.Len(t, obs.results, 1)

	r := obs.results[0]
	assert.Equal(t, []m.Path{objA}, r.Under)
	assert.Empty(t, r.Over)
	assert.True(t, r.Resynced)
	assert.Equal(t, 1, p.cleans)
	assert.Equal(t, []string{"touch " + string(srcX), "build", "clean", "build"}, p.log)
}

func TestAuditor_Run_BaselineAfterResyncIsUsedForNextCandidate(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {},
		objB: {srcY},
	}, srcX, srcY)
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{}

	// Act
	err := a.Run(context.Background(), []m.Path{srcX, srcY}, obs)

	// Assert
	require.NoError(t, err)
	require.Len(t, obs.results, 2)

	// The clean rebuild regenerated a.o, which must not leak into y.c's result.
	next := obs.byPath()[srcY]
	assert.Equal(t, []m.Path{objB}, next.Modified)
	assert.False(t, next.Divergent())
	assert.False(t, next.Resynced)
}

func TestAuditor_Run_OutputVanishingDuringBuildTriggersResync(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {srcX},
		objB: {srcY},
	}, srcX, srcY)
	p.onBuild = func(p *fakeProject) {
		delete(p.mtimes, objB)
		p.onBuild = nil
	}
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{}

	// Act
	err := a.Run(context.Background(), []m.Path{srcX}, obs)

	// Assert
	require.NoError(t, err)
	require.Len(t, obs.results, 1)

	r := obs.results[0]
	assert.Equal(t, []m.Path{objB}, r.Missing)
	assert.Empty(t, r.Under)
	assert.Empty(t, r.Over)
	assert.True(t, r.Resynced)
	assert.Equal(t, 1, p.cleans)
}

func TestAuditor_Run_MissingOutputsAtStartAreRebuiltFirst(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {srcX},
		objB: {srcY},
	}, srcX, srcY)
	delete(p.mtimes, objA)
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{}

	// Act
	err := a.Run(context.Background(), []m.Path{srcX}, obs)

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, p.log)
	assert.Equal(t, []string{"clean", "build"}, p.log[:2])
	assert.False(t, obs.results[0].Divergent())
}

func TestAuditor_Run_SkipsReadOnlyCandidate(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {srcX},
		objB: {srcY},
	}, srcX, srcY)
	p.readOnly[srcX] = true
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{}

	// Act
	err := a.Run(context.Background(), []m.Path{srcX, srcY}, obs)

	// Assert
	require.NoError(t, err)
	require.Len(t, obs.results, 2)
	assert.True(t, obs.results[0].Skipped)
	assert.Equal(t, []m.Path{srcY}, obs.started)
	assert.NotContains(t, p.log, "touch "+string(srcX))
	assert.False(t, obs.results[1].Divergent())
}

func TestAuditor_Run_BuildFailureAborts(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {srcX},
		objB: {srcY},
	}, srcX, srcY)
	p.failNext = errors.New("exit status 2")
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{}

	// Act
	err := a.Run(context.Background(), []m.Path{srcX, srcY}, obs)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrBuildFailed)
	assert.Empty(t, obs.results)
	assert.Equal(t, []m.Path{srcX}, obs.started)
}

func TestAuditor_Run_ObserverErrorAborts(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {srcX},
		objB: {srcY},
	}, srcX, srcY)
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{err: errors.New("disk full")}

	// Act
	err := a.Run(context.Background(), []m.Path{srcX, srcY}, obs)

	// Assert
	require.EqualError(t, err, "disk full")
	assert.Len(t, obs.results, 1)
}

func TestAuditor_Run_CancelledContext(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {srcX},
		objB: {srcY},
	}, srcX, srcY)
	a := newTestAuditor(p, declared(), twoObjectUniverse())
	obs := &collector{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	err := a.Run(ctx, []m.Path{srcX}, obs)

	// Assert
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, obs.results)
	assert.Equal(t, 0, p.builds)
}

func TestAuditor_Candidates_FiltersTracedInputs(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{
		objA: {srcX},
	}, srcY, srcX, genH, roSrc)
	p.readOnly[roSrc] = true
	universe := m.Universe{
		Inputs:  m.NewPathSet(srcY, srcX, genH, roSrc, "/usr/include/stdio.h"),
		Outputs: m.NewPathSet(objA),
	}
	a := newTestAuditor(p, declared(), universe)

	// Act
	candidates, err := a.Candidates(nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []m.Path{srcX, srcY}, candidates)
}

func TestAuditor_Candidates_ExplicitFilesAreUsedAsGiven(t *testing.T) {
	// Arrange
	p := newFakeProject(map[m.Path][]m.Path{objA: {srcX}}, srcX)
	a := newTestAuditor(p, declared(), twoObjectUniverse())

	// Act
	candidates, err := a.Candidates([]string{"/proj/src/../src/y.c", string(genH)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []m.Path{srcY, genH}, candidates)
}

func TestBaselineState_String(t *testing.T) {
	assert.Equal(t, "trusted", trusted.String())
	assert.Equal(t, "needs-resync", needsResync.String())
}
