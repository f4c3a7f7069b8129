package repository

import (
	"context"

	"edunova/internal/domain"
)

// SettingsRepository persists the one-per-user settings row.
type SettingsRepository interface {
	Create(ctx context.Context, settings domain.UserSettings) error
	Get(ctx context.Context, userID int64) (*domain.UserSettings, error)
	// GetForUpdate reads the row and locks it for the rest of the transaction
	// where the database supports row locks.
	GetForUpdate(ctx context.Context, userID int64) (*domain.UserSettings, error)
	Update(ctx context.Context, settings domain.UserSettings) error
}
