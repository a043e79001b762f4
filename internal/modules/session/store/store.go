package store

import (
	"context"
	"errors"

	"github.com/gamenight/server/internal/modules/session/domain"
)

// ErrNotFound means the session does not exist or has already expired.
var ErrNotFound = errors.New("session not found")

// Store is the single owner of persisted sessions. Update is the
// read-modify-write boundary: the mutation runs against the freshly loaded
// document so invariant checks never act on a stale read.
type Store interface {
	Put(ctx context.Context, session domain.Session) error
	Get(ctx context.Context, id string) (domain.Session, error)
	Update(ctx context.Context, id string, mutate func(*domain.Session) error) (domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	Ping(ctx context.Context) error
}
