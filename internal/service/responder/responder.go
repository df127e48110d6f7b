package responder

import (
	"fmt"

	"github.com/mentorlab/coachdesk/internal/model/coach"
	"github.com/mentorlab/coachdesk/internal/model/session"
)

// Fn produces the assistant reply for a chat turn. The snapshot already
// contains the just-appended user turn so implementations see full context.
// Implementations must return a non-empty string and must not mutate session
// state themselves; persistence stays with the session service.
type Fn func(state session.State, userMessage string) string

// Template is the default deterministic responder. A real model-backed
// responder plugs in through Fn without touching the session service.
func Template(state session.State, userMessage string) string {
	base := "Nice ambition. Here's a focused exam plan with clear milestones."
	if state.Coach == coach.NameTara {
		base = "Great effort. Let's break this into 3 tiny actions for today."
	}

	goalPart := ""
	if state.Goal != "" {
		goalPart = fmt.Sprintf(" Goal: %s.", state.Goal)
	}

	return fmt.Sprintf("%s%s You said: %s", base, goalPart, userMessage)
}
