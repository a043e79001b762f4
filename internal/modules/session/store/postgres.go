package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/gamenight/server/internal/modules/core"
	"github.com/gamenight/server/internal/modules/session/domain"

	"github.com/eskrenkovic/tql"
)

// PostgresStore persists each session as a jsonb document with an explicit
// expiry column. Reads filter out expired rows; RowJanitor later deletes
// them so postgres matches redis's automatic expiry.
type PostgresStore struct {
	db  *sql.DB
	ttl time.Duration
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB, ttl time.Duration) *PostgresStore {
	return &PostgresStore{db: db, ttl: ttl}
}

type sessionRow struct {
	ID        string    `db:"id"`
	Document  []byte    `db:"document"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

func (s *PostgresStore) Put(ctx context.Context, session domain.Session) error {
	document, err := json.Marshal(session)
	if err != nil {
		return err
	}

	row := sessionRow{
		ID:        session.ID,
		Document:  document,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.CreatedAt.Add(s.ttl),
	}

	const stmt = `
		INSERT INTO
			sessions (id, document, created_at, expires_at)
		VALUES
			(:id, :document, :created_at, :expires_at);`
	_, err = tql.Exec(ctx, s.db, stmt, row)
	return err
}

func (s *PostgresStore) Get(ctx context.Context, id string) (domain.Session, error) {
	const query = `
		SELECT
			id, document, created_at, expires_at
		FROM
			sessions
		WHERE
			id = $1 AND expires_at > now();`

	row, err := tql.QueryFirst[sessionRow](ctx, s.db, query, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.Session{}, ErrNotFound
	case err != nil:
		return domain.Session{}, err
	}

	return unmarshalSession(row.Document)
}

func (s *PostgresStore) Update(
	ctx context.Context,
	id string,
	mutate func(*domain.Session) error,
) (updated domain.Session, err error) {
	txFn := func(ctx context.Context, tx *sql.Tx) error {
		const query = `
			SELECT
				id, document, created_at, expires_at
			FROM
				sessions
			WHERE
				id = $1 AND expires_at > now()
			FOR UPDATE;`

		row, err := tql.QueryFirst[sessionRow](ctx, tx, query, id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrNotFound
		case err != nil:
			return err
		}

		session, err := unmarshalSession(row.Document)
		if err != nil {
			return err
		}

		if err := mutate(&session); err != nil {
			return err
		}

		document, err := json.Marshal(session)
		if err != nil {
			return err
		}

		const stmt = `
			UPDATE
				sessions
			SET
				document = $1
			WHERE
				id = $2;`
		if _, err := tql.Exec(ctx, tx, stmt, document, id); err != nil {
			return err
		}

		updated = session
		return nil
	}

	if err := core.Tx(ctx, s.db, txFn); err != nil {
		return domain.Session{}, err
	}

	return updated, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]domain.Session, error) {
	const query = `
		SELECT
			id, document, created_at, expires_at
		FROM
			sessions
		WHERE
			expires_at > now()
		ORDER BY
			created_at;`

	rows, err := tql.Query[sessionRow](ctx, s.db, query)
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.Session, 0, len(rows))
	for _, row := range rows {
		session, err := unmarshalSession(row.Document)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// DeleteExpired removes rows past their expiry. Called periodically by the
// janitor; reads never see those rows either way.
func (s *PostgresStore) DeleteExpired(ctx context.Context) error {
	const stmt = `
		DELETE FROM
			sessions
		WHERE
			expires_at <= now();`
	_, err := tql.Exec(ctx, s.db, stmt)
	return err
}

func unmarshalSession(document []byte) (domain.Session, error) {
	var session domain.Session
	if err := json.Unmarshal(document, &session); err != nil {
		return domain.Session{}, err
	}

	return session, nil
}
