package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/mentorlab/coachdesk/internal/model/coach"
)

// ErrUnknownAgeGroup marks caller input outside the recognized age brackets.
var ErrUnknownAgeGroup = errors.New("unknown age group")

// AgeGroup is the closed set of recognized student age brackets.
type AgeGroup string

const (
	AgeGroup6to8  AgeGroup = "Grade 6-8"
	AgeGroup9to12 AgeGroup = "Grade 9-12"
)

// ParseAgeGroup validates a caller-supplied bracket. Anything outside the
// closed set is a validation error, never a silent default.
func ParseAgeGroup(raw string) (AgeGroup, error) {
	switch AgeGroup(raw) {
	case AgeGroup6to8, AgeGroup9to12:
		return AgeGroup(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAgeGroup, raw)
	}
}

// Speaker distinguishes who produced a chat turn.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// ChatTurn is one entry of a session transcript. Turns are immutable once
// appended; append order is the ordering used everywhere.
type ChatTurn struct {
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// State captures a coaching conversation. SessionID and AgeGroup never
// change after creation; MentorRole and Coach change only through persona
// reassignment; Turns grows append-only.
type State struct {
	SessionID  string     `json:"sessionId"`
	AgeGroup   AgeGroup   `json:"ageGroup"`
	MentorRole string     `json:"mentorRole"`
	Tone       string     `json:"tone"`
	Language   string     `json:"language"`
	Coach      coach.Name `json:"coach"`
	Goal       string     `json:"goal,omitempty"`
	Turns      []ChatTurn `json:"turns"`
}

// Clone returns a copy whose turn slice does not alias the receiver's.
func (s State) Clone() State {
	out := s
	out.Turns = make([]ChatTurn, len(s.Turns))
	copy(out.Turns, s.Turns)
	return out
}
