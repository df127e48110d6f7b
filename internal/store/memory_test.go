package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlab/coachdesk/internal/model/coach"
	"github.com/mentorlab/coachdesk/internal/model/session"
	"github.com/mentorlab/coachdesk/internal/store"
)

func sampleState() session.State {
	return session.State{
		SessionID:  "sid-1",
		AgeGroup:   session.AgeGroup6to8,
		MentorRole: "Motivation Coach",
		Tone:       "Calm",
		Language:   "English",
		Coach:      coach.NameTara,
		Goal:       "Improve focus",
		Turns: []session.ChatTurn{
			{Speaker: session.SpeakerUser, Text: "hi", CreatedAt: time.Unix(100, 0).UTC()},
			{Speaker: session.SpeakerAssistant, Text: "hello", CreatedAt: time.Unix(101, 0).UTC()},
		},
	}
}

func TestMemoryStoreReadYourWrites(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	want := sampleState()

	require.NoError(t, st.Save(ctx, want))

	got, ok, err := st.Get(ctx, want.SessionID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	st := store.NewMemoryStore()

	_, ok, err := st.Get(context.Background(), "never-created")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreSaveReplacesWhole(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	first := sampleState()
	require.NoError(t, st.Save(ctx, first))

	second := first.Clone()
	second.Goal = ""
	second.MentorRole = "Exam Strategist"
	require.NoError(t, st.Save(ctx, second))

	got, ok, err := st.Get(ctx, first.SessionID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)
	assert.Empty(t, got.Goal)
}

func TestMemoryStoreDoesNotAliasCallerTurns(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()

	state := sampleState()
	require.NoError(t, st.Save(ctx, state))

	// Mutating the caller's slice must not leak into the stored copy.
	state.Turns[0].Text = "tampered"

	got, ok, err := st.Get(ctx, state.SessionID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hi", got.Turns[0].Text)
}
