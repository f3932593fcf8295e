package model

import "time"

// Snapshot maps files to their last modification time at one instant.
type Snapshot map[Path]time.Time

// Modified returns the keys whose timestamp differs between s and other.
// A key present on one side only counts as modified.
func (s Snapshot) Modified(other Snapshot) PathSet {
	modified := make(PathSet)

	for p, t0 := range s {
		t1, ok := other[p]
		if !ok || !t0.Equal(t1) {
			modified.Add(p)
		}
	}

	for p := range other {
		if _, ok := s[p]; !ok {
			modified.Add(p)
		}
	}

	return modified
}
