package app

import (
	"slices"
	"sync"
)

// Markers is the root element's marker set. Components add a marker while
// they hold a screen-wide mode, e.g. an open emoji picker.
type Markers struct {
	mu  sync.Mutex
	set map[string]int
}

// NewMarkers returns an empty set.
func NewMarkers() *Markers {
	return &Markers{set: map[string]int{}}
}

// AddMarker acquires name. Markers are counted so two holders of the same
// name release independently.
func (s *Markers) AddMarker(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set[name]++
}

// RemoveMarker releases name. Releasing an absent marker is a no-op.
func (s *Markers) RemoveMarker(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set[name] <= 1 {
		delete(s.set, name)
		return
	}
	s.set[name]--
}

// Has reports whether name is held.
func (s *Markers) Has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set[name] > 0
}

// Names lists held markers in sorted order.
func (s *Markers) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.set))
	for name := range s.set {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
