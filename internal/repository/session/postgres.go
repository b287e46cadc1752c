package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"storefront-gateway/internal/domain"
)

type postgresStore struct {
	pool   *pgxpool.Pool
	ttl    time.Duration
	logger *log.Logger
}

// NewPostgres builds a Store backed by the sessions table. Expired rows are
// filtered on read and overwritten on write; a periodic sweep is left to the
// database operator.
func NewPostgres(pool *pgxpool.Pool, ttl time.Duration, logger *log.Logger) Store {
	return &postgresStore{pool: pool, ttl: ttl, logger: logger}
}

func (s *postgresStore) Get(ctx context.Context, id string) (*domain.CustomerRecord, error) {
	const q = `
SELECT record
FROM sessions
WHERE id = $1 AND expires_at > now()
LIMIT 1
`
	var raw []byte
	if err := s.pool.QueryRow(ctx, q, id).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var record domain.CustomerRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		s.logger.Printf("session %s holds an undecodable record: %v", id, err)
		return nil, err
	}
	return &record, nil
}

func (s *postgresStore) Set(ctx context.Context, id string, record domain.CustomerRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO sessions (id, record, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE
SET record = EXCLUDED.record, expires_at = EXCLUDED.expires_at, updated_at = now()
`
	_, err = s.pool.Exec(ctx, q, id, raw, time.Now().Add(s.ttl))
	return err
}

func (s *postgresStore) Delete(ctx context.Context, id string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *postgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
