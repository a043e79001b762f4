package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gamenight/server/internal/modules/session/domain"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps each session as a JSON document under a TTL, so expiry
// needs no janitor: redis drops the key on its own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, session domain.Session) error {
	document, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, redisKeyPrefix+session.ID, document, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (domain.Session, error) {
	document, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return domain.Session{}, ErrNotFound
	case err != nil:
		return domain.Session{}, err
	}

	return unmarshalSession(document)
}

// Update re-reads the document immediately before writing, so the mutation's
// invariant checks run against fresh state. Concurrent updates race
// last-write-wins on the whole document, which matches the storage model.
func (s *RedisStore) Update(
	ctx context.Context,
	id string,
	mutate func(*domain.Session) error,
) (domain.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}

	if err := mutate(&session); err != nil {
		return domain.Session{}, err
	}

	document, err := json.Marshal(session)
	if err != nil {
		return domain.Session{}, err
	}

	// KeepTTL preserves the original 24h window instead of restarting it.
	if err := s.client.Set(ctx, redisKeyPrefix+id, document, redis.KeepTTL).Err(); err != nil {
		return domain.Session{}, err
	}

	return session, nil
}

func (s *RedisStore) List(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session

	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		document, err := s.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}

		session, err := unmarshalSession(document)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
