// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/blocknews-net/herodotus/internal/storage"
)

type pg struct {
	ext sqlx.ExtContext
}

type operationDTO struct {
	Seq       int64           `db:"seq"`
	Kind      string          `db:"kind"`
	Caller    string          `db:"caller"`
	Payload   json.RawMessage `db:"payload"`
	CreatedAt time.Time       `db:"created_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Journal {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) Ping(ctx context.Context) error {
	if _, err := s.ext.ExecContext(ctx, `SELECT 1`); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Head(ctx context.Context) (int64, error) {
	var seq int64
	if err := sqlx.GetContext(ctx, s.ext, &seq, `SELECT COALESCE(MAX(seq), 0) FROM journal`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return seq, nil
}

func (s pg) Append(ctx context.Context, op *storage.Operation) (int64, error) {
	var seq int64

	if err := sqlx.GetContext(ctx, s.ext, &seq, `
			INSERT INTO journal(kind, caller, payload, created_at)
			VALUES($1, $2, $3, $4)
			RETURNING seq
		`,
		op.Kind, op.Caller, op.Payload, op.CreatedAt.UTC(),
	); err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return seq, nil
}

func (s pg) List(ctx context.Context, after int64, limit int) ([]*storage.Operation, error) {
	var ops []*operationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ops, `
			SELECT seq, kind, caller, payload, created_at FROM journal
			WHERE seq > $1
			ORDER BY seq
			LIMIT $2
		`,
		after, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.Operation, len(ops))
	for i, v := range ops {
		out[i] = &storage.Operation{
			Seq:       v.Seq,
			Kind:      v.Kind,
			Caller:    v.Caller,
			Payload:   v.Payload,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}
