package cartstore

import (
	"context"
	"errors"
)

// Store is the key-value collaborator cart snapshots are persisted to.
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// ErrNoSnapshot is returned by Load when no snapshot exists under the key.
var ErrNoSnapshot = errors.New("no snapshot")
