package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mentorlab/coachdesk/internal/model/coach"
	"github.com/mentorlab/coachdesk/internal/model/session"
	"github.com/mentorlab/coachdesk/internal/service/responder"
	"github.com/mentorlab/coachdesk/internal/service/roster"
	"github.com/mentorlab/coachdesk/internal/store"
)

// ErrSessionNotFound marks operations against a session id the store does
// not know. The service never auto-creates a session on a miss.
var ErrSessionNotFound = errors.New("session not found")

// Service owns the session lifecycle: creation, goal mutation, chat turn
// recording, and coach reassignment. Storage and reply generation are
// injected so tests and deployments can swap them independently.
//
// Operations on the same session id are plain read-modify-write sequences
// with no cross-call locking; concurrent writers to one session race and the
// last Save wins. Fine for the single-user sessions this serves.
type Service struct {
	store   store.Store
	policy  roster.Policy
	respond responder.Fn
	now     func() time.Time
	newID   func() string
}

// NewService wires the session service. A nil respond falls back to the
// deterministic template responder.
func NewService(st store.Store, policy roster.Policy, respond responder.Fn) *Service {
	if respond == nil {
		respond = responder.Template
	}
	return &Service{
		store:   st,
		policy:  policy,
		respond: respond,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// GoalResult echoes the applied goal back to the caller.
type GoalResult struct {
	SessionID string `json:"sessionId"`
	Goal      string `json:"goal"`
}

// ChatResult reports the outcome of one recorded exchange. Turns is the
// transcript length after both appends, so callers can verify their message
// landed by checking it grew by exactly two.
type ChatResult struct {
	Coach coach.Name `json:"coach"`
	Reply string     `json:"reply"`
	Turns int        `json:"turns"`
}

// SwitchResult reports the coach active after a reassignment.
type SwitchResult struct {
	SessionID string     `json:"sessionId"`
	Coach     coach.Name `json:"coach"`
}

// CreateSession provisions a session with a fresh id, routes the initial
// coach, persists, and returns the full snapshot. The age bracket is the
// only validated input; mentor role, tone, and language are free-form.
func (s *Service) CreateSession(ctx context.Context, ageGroup, mentorRole, tone, language string) (session.State, error) {
	age, err := session.ParseAgeGroup(ageGroup)
	if err != nil {
		return session.State{}, err
	}

	state := session.State{
		SessionID:  s.newID(),
		AgeGroup:   age,
		MentorRole: mentorRole,
		Tone:       tone,
		Language:   language,
		Coach:      s.policy.Pick(age, mentorRole),
		Turns:      []session.ChatTurn{},
	}

	if err := s.store.Save(ctx, state); err != nil {
		return session.State{}, err
	}
	return state, nil
}

// SetGoal overwrites the session goal, last write wins. No history of prior
// goals is kept.
func (s *Service) SetGoal(ctx context.Context, sessionID, goal string) (GoalResult, error) {
	state, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return GoalResult{}, err
	}

	state.Goal = goal
	if err := s.store.Save(ctx, state); err != nil {
		return GoalResult{}, err
	}
	return GoalResult{SessionID: sessionID, Goal: goal}, nil
}

// RecordChatTurn appends the user message, obtains a reply, appends it as
// the assistant turn, and persists both in one save. The responder sees the
// state including the user turn but before the assistant turn exists.
func (s *Service) RecordChatTurn(ctx context.Context, sessionID, message string) (ChatResult, error) {
	state, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return ChatResult{}, err
	}

	state.Turns = append(state.Turns, session.ChatTurn{
		Speaker:   session.SpeakerUser,
		Text:      message,
		CreatedAt: s.now(),
	})

	reply := s.respond(state.Clone(), message)

	state.Turns = append(state.Turns, session.ChatTurn{
		Speaker:   session.SpeakerAssistant,
		Text:      reply,
		CreatedAt: s.now(),
	})

	if err := s.store.Save(ctx, state); err != nil {
		return ChatResult{}, err
	}
	return ChatResult{Coach: state.Coach, Reply: reply, Turns: len(state.Turns)}, nil
}

// SwitchCoach reassigns the coach from the stored bracket and the new mentor
// role. The bracket never changes; the coach is always the routing table's
// output, never set directly. Idempotent for a repeated role.
func (s *Service) SwitchCoach(ctx context.Context, sessionID, mentorRole string) (SwitchResult, error) {
	state, err := s.requireSession(ctx, sessionID)
	if err != nil {
		return SwitchResult{}, err
	}

	state.MentorRole = mentorRole
	state.Coach = s.policy.Pick(state.AgeGroup, mentorRole)
	if err := s.store.Save(ctx, state); err != nil {
		return SwitchResult{}, err
	}
	return SwitchResult{SessionID: sessionID, Coach: state.Coach}, nil
}

func (s *Service) requireSession(ctx context.Context, sessionID string) (session.State, error) {
	state, ok, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return session.State{}, err
	}
	if !ok {
		return session.State{}, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return state, nil
}
