package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"mkaudit.dev/pkg/mkaudit/internal/adapter"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// Graph is the dependency relation recorded by a traced build. An edge a -> b
// declares that b must be regenerated when a changes. It is immutable once
// loaded.
type Graph struct {
	edges map[m.Path]m.PathSet
	count int
}

// NewGraph builds a graph from an explicit edge list. Used by tests and by
// LoadGraph.
func NewGraph(edges map[m.Path][]m.Path) *Graph {
	g := &Graph{edges: make(map[m.Path]m.PathSet, len(edges))}

	for from, tos := range edges {
		for _, to := range tos {
			g.add(from, to)
		}
	}

	return g
}

func (g *Graph) add(from, to m.Path) {
	set, ok := g.edges[from]
	if !ok {
		set = make(m.PathSet)
		g.edges[from] = set
	}

	if !set.Has(to) {
		set.Add(to)
		g.count++
	}
}

// Edges returns the number of distinct edges.
func (g *Graph) Edges() int {
	return g.count
}

// Nodes returns the number of files with at least one outgoing edge.
func (g *Graph) Nodes() int {
	return len(g.edges)
}

// FindDeps returns every file reachable from f by following edges. The result
// is transitively closed. f itself is only included when a cycle leads back to
// it. Unknown files yield an empty set.
func (g *Graph) FindDeps(f m.Path) m.PathSet {
	deps := make(m.PathSet)
	queue := []m.Path{f}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for next := range g.edges[node] {
			if deps.Has(next) {
				continue
			}

			deps.Add(next)
			queue = append(queue, next)
		}
	}

	return deps
}

// traceResolver maps trace file ids to canonical paths, caching lookups.
type traceResolver struct {
	trace *m.Trace
	fs    adapter.FSAdapter
	cache map[uint64]m.Path
}

func newTraceResolver(trace *m.Trace, fs adapter.FSAdapter) *traceResolver {
	return &traceResolver{
		trace: trace,
		fs:    fs,
		cache: make(map[uint64]m.Path, len(trace.Files)),
	}
}

func (r *traceResolver) path(id uint64) (m.Path, error) {
	if p, ok := r.cache[id]; ok {
		return p, nil
	}

	name, ok := r.trace.FileName(id)
	if !ok {
		return "", fmt.Errorf("%w: unknown file id %d", m.ErrUnreadableTrace, id)
	}

	p, err := r.fs.Canonical(name)
	if err != nil {
		slog.Warn("Failed to canonicalize traced path", "name", name, "error", err)

		p = m.Path(filepath.Clean(name))
	}

	r.cache[id] = p

	return p, nil
}

func (r *traceResolver) paths(ids []uint64) ([]m.Path, error) {
	out := make([]m.Path, 0, len(ids))

	for _, id := range ids {
		p, err := r.path(id)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}

// LoadGraph derives the dependency graph from a trace. Every file a process
// read, including its executable image, gets an edge to every file the same
// process wrote. File-level deps (renames, links) become direct edges.
func LoadGraph(trace *m.Trace, fs adapter.FSAdapter) (*Graph, error) {
	r := newTraceResolver(trace, fs)
	g := &Graph{edges: make(map[m.Path]m.PathSet)}

	for _, file := range trace.Files {
		if len(file.Deps) == 0 {
			continue
		}

		from, err := r.path(file.ID)
		if err != nil {
			return nil, err
		}

		deps, err := r.paths(file.Deps)
		if err != nil {
			return nil, err
		}

		for _, to := range deps {
			g.add(from, to)
		}
	}

	for _, proc := range trace.Procs {
		reads, writes, err := procAccess(r, proc)
		if err != nil {
			return nil, err
		}

		for _, in := range reads {
			for _, out := range writes {
				if in != out {
					g.add(in, out)
				}
			}
		}
	}

	slog.Debug("Loaded dependency graph", "nodes", g.Nodes(), "edges", g.Edges())

	return g, nil
}

// untrackedPrefixes name pseudo filesystems whose entries are never build
// inputs or outputs.
var untrackedPrefixes = []string{"/proc/", "/dev/"}

// LoadUniverse classifies traced files: a file any process wrote, or that a
// written file was renamed or linked to, is an output. A file that was only
// ever read is an input. Files gone by the end of the traced build and
// pseudo filesystem entries are neither.
func LoadUniverse(trace *m.Trace, fs adapter.FSAdapter) (m.Universe, error) {
	r := newTraceResolver(trace, fs)
	reads := make(m.PathSet)
	written := make(m.PathSet)

	for _, proc := range trace.Procs {
		in, out, err := procAccess(r, proc)
		if err != nil {
			return m.Universe{}, err
		}

		for _, p := range in {
			reads.Add(p)
		}

		for _, p := range out {
			written.Add(p)
		}
	}

	present, derived, err := fileStates(r, trace)
	if err != nil {
		return m.Universe{}, err
	}

	queue := written.Sorted()
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for next := range derived[p] {
			if !written.Has(next) {
				written.Add(next)
				queue = append(queue, next)
			}
		}
	}

	universe := m.Universe{
		Inputs:  make(m.PathSet),
		Outputs: make(m.PathSet),
	}

	for p := range written {
		if present.Has(p) && tracked(p) {
			universe.Outputs.Add(p)
		}
	}

	for p := range reads.Difference(written) {
		if present.Has(p) && tracked(p) {
			universe.Inputs.Add(p)
		}
	}

	slog.Debug("Loaded file universe", "inputs", universe.Inputs.Len(), "outputs", universe.Outputs.Len())

	return universe, nil
}

// fileStates returns the files that still existed when the traced build
// finished, along with the rename and link targets of every file.
func fileStates(r *traceResolver, trace *m.Trace) (m.PathSet, map[m.Path]m.PathSet, error) {
	present := make(m.PathSet)
	derived := make(map[m.Path]m.PathSet)

	for _, file := range trace.Files {
		p, err := r.path(file.ID)
		if err != nil {
			return nil, nil, err
		}

		if file.Exists {
			present.Add(p)
		}

		if len(file.Deps) == 0 {
			continue
		}

		targets, err := r.paths(file.Deps)
		if err != nil {
			return nil, nil, err
		}

		if derived[p] == nil {
			derived[p] = make(m.PathSet)
		}

		for _, t := range targets {
			if t != p {
				derived[p].Add(t)
			}
		}
	}

	return present, derived, nil
}

func tracked(p m.Path) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(string(p), prefix) {
			return false
		}
	}

	return true
}

func procAccess(r *traceResolver, proc m.TraceProc) ([]m.Path, []m.Path, error) {
	reads, err := r.paths(proc.Input)
	if err != nil {
		return nil, nil, err
	}

	if proc.Image != nil {
		image, err := r.path(*proc.Image)
		if err != nil {
			return nil, nil, err
		}

		reads = append(reads, image)
	}

	writes, err := r.paths(proc.Output)
	if err != nil {
		return nil, nil, err
	}

	return reads, writes, nil
}
