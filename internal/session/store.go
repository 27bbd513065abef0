package session

import (
	"context"
	"time"
)

// Session is the server-side marker created at login/registration. It
// is deliberately decoupled from the JWT: logout removes the marker but
// the token stays valid until expiry.
type Session struct {
	UserID    string    `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	UserAgent string    `json:"user_agent,omitempty"`
}

type Store interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, userID string) (*Session, bool, error)
	Delete(ctx context.Context, userID string) error
}
