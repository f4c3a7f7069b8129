package repository

import (
	"context"

	"edunova/internal/domain"
)

// ProgressRepository persists learning progress keyed by user and content.
type ProgressRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.ProgressRecord, error)
	// Upsert inserts or updates the record for its (user, content type, content id)
	// key in a single statement and fills in ID and LastAccessed.
	Upsert(ctx context.Context, record *domain.ProgressRecord) error
	Stats(ctx context.Context, userID int64) (domain.ProgressStats, error)
}
