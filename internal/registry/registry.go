package registry

import (
	"cmp"
	"slices"
)

// Set is the collection of hide targets. It never holds the same pair twice.
// Set does no locking of its own: the owner serializes access.
type Set struct {
	items map[Target]struct{}
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{items: make(map[Target]struct{})}
}

// Add inserts t and reports whether it was absent.
func (s *Set) Add(t Target) bool {
	if _, ok := s.items[t]; ok {
		return false
	}
	s.items[t] = struct{}{}
	return true
}

// Has reports whether the exact pair is present.
func (s *Set) Has(t Target) bool {
	_, ok := s.items[t]
	return ok
}

// Remove deletes the exact pair if proc is non-empty, or every pair of pkg
// otherwise. It returns the removed targets in sorted order.
func (s *Set) Remove(pkg, proc string) []Target {
	var removed []Target
	for t := range s.items {
		if t.Package != pkg || (proc != "" && t.Process != proc) {
			continue
		}
		delete(s.items, t)
		removed = append(removed, t)
	}
	sortTargets(removed)
	return removed
}

// Len returns the number of targets.
func (s *Set) Len() int {
	return len(s.items)
}

// Clear drops every target.
func (s *Set) Clear() {
	s.items = make(map[Target]struct{})
}

// Snapshot copies the targets sorted by package, then process.
func (s *Set) Snapshot() []Target {
	out := make([]Target, 0, len(s.items))
	for t := range s.items {
		out = append(out, t)
	}
	sortTargets(out)
	return out
}

func sortTargets(ts []Target) {
	slices.SortFunc(ts, func(a, b Target) int {
		return cmp.Or(cmp.Compare(a.Package, b.Package), cmp.Compare(a.Process, b.Process))
	})
}
