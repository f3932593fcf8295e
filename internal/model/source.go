package model

import (
	"path/filepath"
	"sort"
	"strings"
)

// Path represents an absolute, canonical file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Under reports whether p is dir itself or lies beneath it.
func (p Path) Under(dir Path) bool {
	if dir == "" {
		return false
	}

	if p == dir {
		return true
	}

	prefix := strings.TrimSuffix(string(dir), string(filepath.Separator)) + string(filepath.Separator)

	return strings.HasPrefix(string(p), prefix)
}

// PathSet is an unordered set of paths.
type PathSet map[Path]struct{}

// NewPathSet builds a set from the given paths.
func NewPathSet(paths ...Path) PathSet {
	set := make(PathSet, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}

	return set
}

// Add inserts p into the set.
func (s PathSet) Add(p Path) {
	s[p] = struct{}{}
}

// Has reports whether p is in the set.
func (s PathSet) Has(p Path) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of elements.
func (s PathSet) Len() int {
	return len(s)
}

// Union returns a new set holding the elements of both sets.
func (s PathSet) Union(other PathSet) PathSet {
	out := make(PathSet, len(s)+len(other))
	for p := range s {
		out[p] = struct{}{}
	}

	for p := range other {
		out[p] = struct{}{}
	}

	return out
}

// Intersect returns a new set holding the elements present in both sets.
func (s PathSet) Intersect(other PathSet) PathSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	out := make(PathSet)

	for p := range small {
		if large.Has(p) {
			out[p] = struct{}{}
		}
	}

	return out
}

// Difference returns a new set holding the elements of s not in other.
func (s PathSet) Difference(other PathSet) PathSet {
	out := make(PathSet)

	for p := range s {
		if !other.Has(p) {
			out[p] = struct{}{}
		}
	}

	return out
}

// Equal reports whether both sets hold exactly the same elements.
func (s PathSet) Equal(other PathSet) bool {
	if len(s) != len(other) {
		return false
	}

	for p := range s {
		if !other.Has(p) {
			return false
		}
	}

	return true
}

// Sorted returns the elements in lexical order.
func (s PathSet) Sorted() []Path {
	out := make([]Path, 0, len(s))
	for p := range s {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i] < out[j]
	})

	return out
}

// Universe splits the files touched by a traced build into inputs and outputs.
type Universe struct {
	Inputs  PathSet
	Outputs PathSet
}

// Overlap returns the files recorded as both input and output.
// It is empty for well-formed traces.
func (u Universe) Overlap() PathSet {
	return u.Inputs.Intersect(u.Outputs)
}
