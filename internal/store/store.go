// Package store houses the session persistence contract and its concrete
// backends. Callers depend on the Store interface only; the wiring layer
// decides which implementation to instantiate.
package store

import (
	"context"

	"github.com/mentorlab/coachdesk/internal/model/session"
)

// Store is the key-value contract the session service needs. Save upserts
// the full state under its session id, replacing any prior value; Get is an
// exact-key lookup reporting absence through the bool.
type Store interface {
	Save(ctx context.Context, state session.State) error
	Get(ctx context.Context, sessionID string) (session.State, bool, error)
}
