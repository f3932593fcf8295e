package domain

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// fakeProject is an in-memory source tree with a make-like build. Each rule
// regenerates its output when the output is missing or older than one of the
// rule's real inputs. It implements both adapter.FSAdapter and BuildOracle so
// the declared graph can be made to disagree with what the build really does.
type fakeProject struct {
	clock    time.Time
	mtimes   map[m.Path]time.Time
	readOnly map[m.Path]bool
	rules    map[m.Path][]m.Path
	buildDir m.Path

	builds   int
	cleans   int
	failNext error
	onBuild  func(p *fakeProject)
	log      []string
}

func newFakeProject(rules map[m.Path][]m.Path, sources ...m.Path) *fakeProject {
	p := &fakeProject{
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		mtimes:   make(map[m.Path]time.Time),
		readOnly: make(map[m.Path]bool),
		rules:    rules,
		buildDir: "/proj/build",
	}

	for _, src := range sources {
		p.mtimes[src] = p.tick()
	}

	// Start from a fully built tree.
	p.regenerate(true)

	return p
}

func (p *fakeProject) tick() time.Time {
	p.clock = p.clock.Add(time.Second)
	return p.clock
}

func (p *fakeProject) outputs() m.PathSet {
	set := make(m.PathSet, len(p.rules))
	for out := range p.rules {
		set.Add(out)
	}

	return set
}

func (p *fakeProject) regenerate(all bool) {
	for _, out := range p.outputs().Sorted() {
		mtime, exists := p.mtimes[out]
		stale := all || !exists

		for _, in := range p.rules[out] {
			if t, ok := p.mtimes[in]; ok && t.After(mtime) {
				stale = true
			}
		}

		if stale {
			p.mtimes[out] = p.tick()
		}
	}
}

// FSAdapter

func (p *fakeProject) Canonical(path string) (m.Path, error) {
	return m.Path(filepath.Clean(path)), nil
}

func (p *fakeProject) ModTime(path m.Path) (time.Time, error) {
	t, ok := p.mtimes[path]
	if !ok {
		return time.Time{}, fmt.Errorf("stat %s: %w", path, fs.ErrNotExist)
	}

	return t, nil
}

func (p *fakeProject) Touch(path m.Path, _ time.Time) error {
	if _, ok := p.mtimes[path]; !ok {
		return fmt.Errorf("touch %s: %w", path, fs.ErrNotExist)
	}

	p.log = append(p.log, "touch "+string(path))
	p.mtimes[path] = p.tick()

	return nil
}

func (p *fakeProject) Writable(path m.Path) bool {
	_, ok := p.mtimes[path]
	return ok && !p.readOnly[path]
}

func (p *fakeProject) Exists(path m.Path) bool {
	_, ok := p.mtimes[path]
	return ok
}

func (p *fakeProject) IsDir(path m.Path) bool {
	return path == p.buildDir
}

func (p *fakeProject) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	return m.Path(rel), err
}

// BuildOracle

func (p *fakeProject) Build(_ context.Context) error {
	p.builds++
	p.log = append(p.log, "build")

	if err := p.failNext; err != nil {
		p.failNext = nil
		return fmt.Errorf("%w: %w", m.ErrBuildFailed, err)
	}

	p.regenerate(false)

	if p.onBuild != nil {
		p.onBuild(p)
	}

	return nil
}

func (p *fakeProject) Clean(_ context.Context) error {
	p.cleans++
	p.log = append(p.log, "clean")

	for out := range p.rules {
		delete(p.mtimes, out)
	}

	return nil
}

func (p *fakeProject) CleanBuild(ctx context.Context) error {
	if err := p.Clean(ctx); err != nil {
		return err
	}

	return p.Build(ctx)
}

func (p *fakeProject) Filter(f m.Path) bool {
	return p.Writable(f) && !f.Under(p.buildDir)
}

func (p *fakeProject) Config() OracleConfig {
	return OracleConfig{Backend: Backends[0], ProjectDir: "/proj", BuildDir: p.buildDir}
}

// collector is an AuditObserver that keeps everything it is told.
type collector struct {
	started []m.Path
	results []m.CandidateResult
	err     error
}

func (c *collector) CandidateStarted(_, _ int, path m.Path) {
	c.started = append(c.started, path)
}

func (c *collector) CandidateFinished(result m.CandidateResult) error {
	c.results = append(c.results, result)
	return c.err
}

func (c *collector) byPath() map[m.Path]m.CandidateResult {
	out := make(map[m.Path]m.CandidateResult, len(c.results))
	for _, r := range c.results {
		out[r.Path] = r
	}

	return out
}

func sortedKeys(edges map[m.Path][]m.Path) []m.Path {
	keys := make([]m.Path, 0, len(edges))
	for k := range edges {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}
