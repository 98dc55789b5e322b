package sim

import "fmt"

// ActiveSet holds the requests currently occupying a concurrency slot.
// A position index gives O(1) removal; iteration order is not meaningful.
type ActiveSet struct {
	members []Handle
	pos     map[Handle]int
}

// NewActiveSet creates an empty active set.
func NewActiveSet() *ActiveSet {
	return &ActiveSet{pos: make(map[Handle]int)}
}

// Len returns the number of occupied slots.
func (s *ActiveSet) Len() int {
	return len(s.members)
}

// Add places h into the set. Adding a member twice is a programming error.
func (s *ActiveSet) Add(h Handle) {
	if _, ok := s.pos[h]; ok {
		panic(fmt.Sprintf("ActiveSet.Add: handle %d already active", h))
	}
	s.pos[h] = len(s.members)
	s.members = append(s.members, h)
}

// Remove takes h out of the set, reporting whether it was a member.
func (s *ActiveSet) Remove(h Handle) bool {
	i, ok := s.pos[h]
	if !ok {
		return false
	}
	last := len(s.members) - 1
	s.members[i] = s.members[last]
	s.pos[s.members[i]] = i
	s.members = s.members[:last]
	delete(s.pos, h)
	return true
}

// Contains reports whether h occupies a slot.
func (s *ActiveSet) Contains(h Handle) bool {
	_, ok := s.pos[h]
	return ok
}

// Members returns the active handles. Callers MUST NOT modify the slice.
func (s *ActiveSet) Members() []Handle {
	return s.members
}
