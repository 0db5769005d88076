// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// Picker holds the emoji picker bindings. Arrow keys are handled by the
// picker itself because their meaning depends on the search-box caret.
var Picker = struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Select       key.Binding
	Close        key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	SkinTone     key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
}{
	Up:           key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:         key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Left:         key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous")),
	Right:        key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
	Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Close:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	NextCategory: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
	PrevCategory: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous category")),
	SkinTone:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "skin tone")),
	PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
}

// App holds the playground screen bindings.
var App = struct {
	OpenPicker key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Threads    key.Binding
	Help       key.Binding
	Quit       key.Binding
}{
	OpenPicker: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "emoji")),
	FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
	FocusPrev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous pane")),
	Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
	Threads:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "threads")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// Drafts holds the draft list action bindings.
var Drafts = struct {
	Edit   key.Binding
	Delete key.Binding
	Send   key.Binding
}{
	Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Send:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "send")),
}

// Tip holds the tutorial tip bindings.
var Tip = struct {
	Next key.Binding
	Skip key.Binding
}{
	Next: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
	Skip: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "skip tips")),
}

// ShortHelp returns the bindings shown in the playground footer.
func ShortHelp() []key.Binding {
	return []key.Binding{App.OpenPicker, App.FocusNext, App.Threads, App.Help, App.Quit}
}
