// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package expand

// Set is a string set that remembers insertion order. Membership is by
// exact string equality and the set never shrinks.
type Set struct {
	items []string
	index map[string]struct{}
}

// NewSet returns a set holding items, duplicates dropped.
func NewSet(items ...string) *Set {
	s := &Set{index: make(map[string]struct{}, len(items))}
	s.AddAll(items)
	return s
}

// Add inserts item and reports whether it was new.
func (s *Set) Add(item string) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// AddAll inserts every item and returns how many were new.
func (s *Set) AddAll(items []string) int {
	added := 0
	for _, it := range items {
		if s.Add(it) {
			added++
		}
	}
	return added
}

// Contains reports whether item is in the set.
func (s *Set) Contains(item string) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.items) }

// At returns the i-th member in insertion order.
func (s *Set) At(i int) string { return s.items[i] }

// Items returns a copy of the members in insertion order.
func (s *Set) Items() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}
