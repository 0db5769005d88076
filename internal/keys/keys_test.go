package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestPicker_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{name: "skin tone cycles with ctrl+s", binding: Picker.SkinTone, expected: []string{"ctrl+s"}},
		{name: "select is enter", binding: Picker.Select, expected: []string{"enter"}},
		{name: "close is esc", binding: Picker.Close, expected: []string{"esc"}},
		{name: "tab jumps categories", binding: Picker.NextCategory, expected: []string{"tab"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestPicker_ArrowsHaveNoLetterAliases(t *testing.T) {
	// Letters go to the search box.
	for _, b := range []key.Binding{Picker.Up, Picker.Down, Picker.Left, Picker.Right} {
		require.Len(t, b.Keys(), 1)
	}
}

func TestShortHelp_HasHelpText(t *testing.T) {
	for _, b := range ShortHelp() {
		require.NotEmpty(t, b.Help().Key)
		require.NotEmpty(t, b.Help().Desc)
	}
}
