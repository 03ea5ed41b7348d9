package session

import (
	"context"
	"time"
)

// Session binds an opaque identifier to an authenticated user.
// It stores identity pointers only, no authorization state.
type Session struct {
	SessionID string    // unique session identifier
	UserID    string    // references users.id
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Get returns (nil, nil) for an unknown id; Delete of an unknown id is not
// an error, which keeps logout idempotent.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
