package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/mentorlab/coachdesk/internal/model/session"
)

const sessionsTable = "coach_sessions"

// PostgresStore persists sessions as keyed JSON records in Postgres, with a
// placeholder pgvector embedding column so the same table can later serve
// similarity lookups over transcripts.
//
// Availability beats durability here: if the database is unreachable at
// construction or at call time, Save becomes a no-op and Get reports absent,
// so the rest of the system keeps operating in a degraded stateless mode. A
// successful Save therefore does not imply durability.
type PostgresStore struct {
	db          *sql.DB
	pingTimeout time.Duration
}

// NewPostgresStore connects to the given DSN and ensures the schema. On any
// failure it logs and returns a degraded store instead of erroring.
func NewPostgresStore(ctx context.Context, dsn string) *PostgresStore {
	s := &PostgresStore{pingTimeout: 3 * time.Second}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("[store] postgres unavailable, running stateless: %v", err)
		return s
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Printf("[store] postgres unreachable, running stateless: %v", err)
		db.Close()
		return s
	}

	if err := ensureSchema(ctx, db); err != nil {
		log.Printf("[store] schema setup failed, running stateless: %v", err)
		db.Close()
		return s
	}

	s.db = db
	return s
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+sessionsTable+` (
		id         text PRIMARY KEY,
		payload    jsonb NOT NULL,
		embedding  vector(1),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`)
	return err
}

// Save upserts the full session record, replacing any prior payload.
func (s *PostgresStore) Save(ctx context.Context, state session.State) error {
	if s.db == nil {
		return nil
	}

	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO `+sessionsTable+` (id, payload, embedding, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		state.SessionID, payload, pgvector.NewVector([]float32{0}))
	if err != nil {
		log.Printf("[store] save failed for session=%s, dropping write: %v", state.SessionID, err)
	}
	return nil
}

// Get retrieves a session by exact id. Transient database failures surface
// as absence, matching the degraded-mode policy.
func (s *PostgresStore) Get(ctx context.Context, sessionID string) (session.State, bool, error) {
	if s.db == nil {
		return session.State{}, false, nil
	}

	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM `+sessionsTable+` WHERE id = $1`, sessionID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return session.State{}, false, nil
	}
	if err != nil {
		log.Printf("[store] get failed for session=%s, treating as absent: %v", sessionID, err)
		return session.State{}, false, nil
	}

	var state session.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return session.State{}, false, err
	}
	return state, true, nil
}

// Close releases the underlying pool. Safe to call on a degraded store.
func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
