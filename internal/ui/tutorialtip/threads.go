package tutorialtip

import (
	"strings"

	"github.com/zjrosen/parley/internal/ui/overlay"
)

// Threads tour steps and storage category.
const (
	ThreadsCategory       = "crt_tutorial_step"
	ThreadsWelcomeStep    = 0
	ThreadsListStep       = 1
	ThreadsUnreadStep     = 2
	ThreadsButtonZone     = "sidebar-threads-button"
	threadsWelcomeTag     = "tutorial_tip_threads-welcome"
	threadsWelcomeTitle   = "Welcome to the Threads view!"
	threadsWelcomeMessage = "All the conversations that you’re participating in or following will show here. " +
		"If you have unread messages or mentions within your threads, you’ll see that here too."
)

// NewThreadsWelcome is the first step of the threads tour. It points at the
// sidebar Threads button and Next opens {teamURL}/threads.
func NewThreadsWelcome(teamURL string, autoTour bool, store StepStore, opts ...Option) Model {
	return New(Config{
		Title:        threadsWelcomeTitle,
		Screen:       threadsWelcomeMessage,
		Placement:    overlay.Right,
		Step:         ThreadsWelcomeStep,
		Category:     ThreadsCategory,
		ShowOptOut:   false,
		AutoTour:     autoTour,
		PunchOut:     []string{ThreadsButtonZone},
		TelemetryTag: threadsWelcomeTag,
		NextPath:     strings.TrimSuffix(teamURL, "/") + "/threads",
	}, store, opts...)
}
