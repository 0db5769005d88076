// Package nav carries in-app navigation requests from components to the
// screen that owns routing.
package nav

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// NavigateMsg asks the app to show Path, e.g. "/core/threads".
type NavigateMsg struct {
	Path string
}

// To returns a command that emits NavigateMsg for path.
func To(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// TeamPath joins a team name and a sub path into "/{team}/{sub}".
func TeamPath(team string, sub ...string) string {
	parts := append([]string{strings.Trim(team, "/")}, sub...)
	return "/" + strings.Join(parts, "/")
}
