package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/urbanfarm-dashboard/internal/domain"
	"github.com/jhoicas/urbanfarm-dashboard/internal/infrastructure/storage"
)

var _ storage.Store = (*StateStore)(nil)

// querier lo cumplen *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createStateTable = `
CREATE TABLE IF NOT EXISTS client_state (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// StateStore implementa storage.Store sobre la tabla client_state.
type StateStore struct {
	db querier
}

// NewStateStore construye el almacén. Llamar EnsureSchema antes del primer uso.
func NewStateStore(db querier) *StateStore {
	return &StateStore{db: db}
}

// EnsureSchema crea la tabla si no existe.
func (s *StateStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createStateTable); err != nil {
		return fmt.Errorf("crear client_state: %w", err)
	}
	return nil
}

func (s *StateStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value []byte
	err := s.db.QueryRow(ctx, `SELECT value FROM client_state WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer %q: %w", key, err)
	}
	return json.RawMessage(value), nil
}

func (s *StateStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	const q = `
		INSERT INTO client_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.db.Exec(ctx, q, key, []byte(value)); err != nil {
		return fmt.Errorf("guardar %q: %w", key, err)
	}
	return nil
}

func (s *StateStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM client_state WHERE key = $1`, key)
	if err != nil && !isUndefinedTable(err) {
		return fmt.Errorf("borrar %q: %w", key, err)
	}
	return nil
}
