package docstore

import (
	"context"

	"autopneu-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Storage keys, one per independent document. The version suffix replaces
// schema migration: an incompatible shape change bumps the suffix and old
// data is simply ignored.
const (
	KeyConfig   = "site_config_v11"
	KeyServices = "site_services_v11"
	KeyBookings = "site_bookings_v11"
)

// Store is a key-value document store over a single Postgres table. Each
// document is serialized JSON saved under its own key; documents are
// independent and there is no cross-document transaction.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Init creates the backing table. Idempotent; this is the only DDL the
// service ever runs.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			key        text PRIMARY KEY,
			value      jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return infra.WrapRepoErr("failed to initialize document store", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM documents WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("document not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load document", err)
	}
	return raw, nil
}

func (s *Store) Save(ctx context.Context, key string, raw []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO documents (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, raw)
	if err != nil {
		return infra.WrapRepoErr("failed to save document", err)
	}
	return nil
}

// Reset wipes every persisted document. Destructive and irreversible; the
// confirmation gate lives in the usecase layer.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM documents WHERE key = ANY($1)`,
		[]string{KeyConfig, KeyServices, KeyBookings})
	if err != nil {
		return infra.WrapRepoErr("failed to reset document store", err)
	}
	return nil
}
