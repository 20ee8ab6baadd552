package session

import (
	"context"
	"errors"
	"time"
)

// TTL after which an untouched session is discarded at load time. There is no
// background sweep; expiry is checked lazily against last_saved_at.
const ExpireAfter = 24 * time.Hour

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

// Store is the keyed document store boundary. Save carries the complete
// session (not a delta), so last-write-wins at the store cannot corrupt the
// answer map. A Save that returns an error has not been durably applied.
type Store interface {
	Save(ctx context.Context, s Session) error
	Load(ctx context.Context, userID string) (Session, error)
	Delete(ctx context.Context, userID string) error
}
