package model

import "time"

// Witness classifies an output that contradicts the declared graph.
type Witness int

const (
	// Over marks an output rebuilt without a declared dependency (spurious work).
	Over Witness = iota
	// Under marks a declared dependent that was not rebuilt (missed work).
	Under
)

func (w Witness) String() string {
	switch w {
	case Over:
		return "over"
	case Under:
		return "under"
	default:
		return "unknown"
	}
}

// Marker returns the single-character prefix used in progress output.
func (w Witness) Marker() string {
	if w == Under {
		return "-"
	}

	return "+"
}

// CandidateResult is the outcome of touching one input and rebuilding.
type CandidateResult struct {
	Index    int           `yaml:"index"`
	Total    int           `yaml:"total"`
	Path     Path          `yaml:"path"`
	Skipped  bool          `yaml:"skipped,omitempty"`
	Expected []Path        `yaml:"-"`
	Modified []Path        `yaml:"-"`
	Over     []Path        `yaml:"over,omitempty"`
	Under    []Path        `yaml:"under,omitempty"`
	Missing  []Path        `yaml:"missing,omitempty"`
	Resynced bool          `yaml:"resynced,omitempty"`
	Duration time.Duration `yaml:"duration"`
}

// Divergent reports whether the rebuild disagreed with the graph.
func (r CandidateResult) Divergent() bool {
	return len(r.Over) > 0 || len(r.Under) > 0 || len(r.Missing) > 0
}

// AuditReport collects the results of one audit session.
type AuditReport struct {
	SessionID  string            `yaml:"session"`
	Project    Path              `yaml:"project"`
	Backend    string            `yaml:"backend"`
	TracePath  Path              `yaml:"trace"`
	StartedAt  time.Time         `yaml:"started_at"`
	FinishedAt time.Time         `yaml:"finished_at"`
	Candidates int               `yaml:"candidates"`
	Results    []CandidateResult `yaml:"results"`
}

// Divergent returns the results that disagreed with the graph.
func (r AuditReport) Divergent() []CandidateResult {
	var out []CandidateResult

	for _, res := range r.Results {
		if res.Divergent() {
			out = append(out, res)
		}
	}

	return out
}

// Count returns the total number of witnesses of kind w.
func (r AuditReport) Count(w Witness) int {
	total := 0

	for _, res := range r.Results {
		switch w {
		case Over:
			total += len(res.Over)
		case Under:
			total += len(res.Under)
		}
	}

	return total
}

// Skipped returns the number of candidates skipped for lack of write access.
func (r AuditReport) Skipped() int {
	total := 0

	for _, res := range r.Results {
		if res.Skipped {
			total++
		}
	}

	return total
}

// QueryResult lists the recorded dependents of one file.
type QueryResult struct {
	File Path     `yaml:"file"`
	Name string   `yaml:"name"`
	Deps []string `yaml:"deps"`
}

// Stats summarises a loaded trace.
type Stats struct {
	Inputs     int
	Outputs    int
	Edges      int
	Candidates []Path
}
