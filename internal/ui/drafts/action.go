package drafts

import (
	"github.com/zjrosen/parley/internal/ui/styles"
)

// ActionKind names a draft action.
type ActionKind string

const (
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
	ActionSend   ActionKind = "send"
)

// ActionMsg is sent when a draft action is clicked or triggered by key.
type ActionMsg struct {
	Kind     ActionKind
	DraftKey string
}

// Action is an icon button with a hover hint.
type Action struct {
	Kind    ActionKind
	Icon    string
	Tooltip string
}

// DefaultActions are the row buttons in display order.
func DefaultActions() []Action {
	return []Action{
		{Kind: ActionDelete, Icon: "🗑", Tooltip: "Delete draft"},
		{Kind: ActionEdit, Icon: "✎", Tooltip: "Edit draft"},
		{Kind: ActionSend, Icon: "➤", Tooltip: "Send now"},
	}
}

// View renders the button. Delete uses the danger color.
func (a Action) View(focused bool) string {
	style := styles.ActionButtonStyle
	if a.Kind == ActionDelete {
		style = styles.ActionDeleteStyle
	}
	if focused {
		style = style.Inherit(styles.ActionFocusedStyle)
	}
	return style.Render(a.Icon)
}

// AccessibleLabel is the button's screen-reader text.
func (a Action) AccessibleLabel() string { return a.Tooltip }
