package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTo(t *testing.T) {
	require.Equal(t, NavigateMsg{Path: "/core/emoji"}, To("/core/emoji")())
}

func TestTeamPath(t *testing.T) {
	require.Equal(t, "/core/emoji", TeamPath("core", "emoji"))
	require.Equal(t, "/core/threads", TeamPath("/core/", "threads"))
	require.Equal(t, "/core", TeamPath("core"))
}
