// Package storage contains a storage interface.
package storage

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// Operation is a journaled write operation. Seq is assigned by the journal
// and establishes the total order operations are replayed in.
type Operation struct {
	Seq       int64
	Kind      string
	Caller    string
	Payload   json.RawMessage
	CreatedAt time.Time
}

// Journal provides methods for persisting applied operations.
type Journal interface {
	Ping(ctx context.Context) error
	Head(ctx context.Context) (int64, error)
	Append(ctx context.Context, op *Operation) (int64, error)
	List(ctx context.Context, after int64, limit int) ([]*Operation, error)
}
