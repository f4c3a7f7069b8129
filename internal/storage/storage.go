package storage

import (
	"context"
	"time"
)

// Service turns stored asset keys into URLs a client can fetch directly.
type Service interface {
	GetObjectURL(ctx context.Context, key string, expires time.Duration) (string, error)
}
