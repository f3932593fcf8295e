package domain

import (
	"fmt"
	"log/slog"
	"strings"

	"mkaudit.dev/pkg/mkaudit/internal/adapter"
	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// DefaultIgnorePrefixes lists transient system directories whose files are
// never meaningful build dependencies.
var DefaultIgnorePrefixes = []string{"/proc/", "/tmp/", "/dev/"}

// Querier lists the recorded dependents of files. It never mutates anything.
type Querier struct {
	graph    *Graph
	fs       adapter.FSAdapter
	root     m.Path
	prefixes []string
}

// NewQuerier constructs a Querier. A nil prefixes slice uses DefaultIgnorePrefixes.
func NewQuerier(graph *Graph, fs adapter.FSAdapter, projectRoot m.Path, prefixes []string) *Querier {
	if prefixes == nil {
		prefixes = DefaultIgnorePrefixes
	}

	return &Querier{
		graph:    graph,
		fs:       fs,
		root:     projectRoot,
		prefixes: prefixes,
	}
}

// Query returns one result per requested file, in request order.
func (q *Querier) Query(files []string) ([]m.QueryResult, error) {
	results := make([]m.QueryResult, 0, len(files))

	for _, f := range files {
		path, err := q.fs.Canonical(f)
		if err != nil {
			slog.Error("Failed to normalise query path", "path", f, "error", err)
			return nil, fmt.Errorf("normalise %s: %w", f, err)
		}

		results = append(results, m.QueryResult{
			File: path,
			Name: f,
			Deps: q.deps(path),
		})
	}

	return results, nil
}

func (q *Querier) deps(path m.Path) []string {
	deps := []string{}

	for _, dep := range q.graph.FindDeps(path).Sorted() {
		if dep == path || q.ignored(dep) {
			continue
		}

		deps = append(deps, q.display(dep))
	}

	return deps
}

func (q *Querier) ignored(p m.Path) bool {
	for _, prefix := range q.prefixes {
		if strings.HasPrefix(string(p), prefix) {
			return true
		}
	}

	return false
}

// display relativises p to the project root when it lies beneath it.
func (q *Querier) display(p m.Path) string {
	if q.root == "" || p == q.root || !p.Under(q.root) {
		return string(p)
	}

	rel, err := q.fs.RelPath(q.root, p)
	if err != nil {
		return string(p)
	}

	return string(rel)
}
