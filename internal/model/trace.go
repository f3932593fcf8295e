package model

// TraceFile is one file record of the tracer output.
// Deps lists ids of files derived from this one outside of any process
// (renames and links observed by the tracer).
type TraceFile struct {
	ID     uint64   `json:"id"`
	Name   string   `json:"name"`
	Exists bool     `json:"exists"`
	Deps   []uint64 `json:"deps,omitempty"`
}

// TraceProc is one process record of the tracer output.
type TraceProc struct {
	UID    uint64   `json:"uid"`
	Parent uint64   `json:"parent"`
	Image  *uint64  `json:"image,omitempty"`
	Cwd    string   `json:"cwd,omitempty"`
	Input  []uint64 `json:"input,omitempty"`
	Output []uint64 `json:"output,omitempty"`
}

// Trace is the decoded output of one traced build.
type Trace struct {
	Files []TraceFile `json:"files"`
	Procs []TraceProc `json:"procs"`

	index map[uint64]string
}

// FileName resolves a file id to its recorded name.
func (t *Trace) FileName(id uint64) (string, bool) {
	if t.index == nil {
		t.index = make(map[uint64]string, len(t.Files))
		for _, f := range t.Files {
			t.index[f.ID] = f.Name
		}
	}

	name, ok := t.index[id]

	return name, ok
}
