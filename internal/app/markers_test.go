package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkers_CountedHolders(t *testing.T) {
	s := NewMarkers()
	s.AddMarker("picker")
	s.AddMarker("picker")
	s.AddMarker("modal")
	assert.Equal(t, []string{"modal", "picker"}, s.Names())

	s.RemoveMarker("picker")
	assert.True(t, s.Has("picker"), "one holder remains")
	s.RemoveMarker("picker")
	assert.False(t, s.Has("picker"))

	s.RemoveMarker("absent")
	assert.Equal(t, []string{"modal"}, s.Names())
}
