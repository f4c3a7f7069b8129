package service

import (
	"context"
	"time"

	"edunova/internal/domain"
	"edunova/internal/repository"
)

// SettingsService reads and patches the per-user settings row.
type SettingsService interface {
	Get(ctx context.Context, userID int64) (*domain.UserSettings, error)
	Update(ctx context.Context, userID int64, patch domain.SettingsPatch) (*domain.UserSettings, error)
}

type settingsService struct {
	store repository.Store
	now   func() time.Time
}

func NewSettingsService(store repository.Store) SettingsService {
	return &settingsService{store: store, now: time.Now}
}

func (s *settingsService) Get(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	settings, err := s.store.Settings().Get(ctx, userID)
	if err != nil {
		return nil, storeErr("get settings", err)
	}
	return settings, nil
}

// Update merges the fields present in patch over the stored row. A user
// without a settings row gets ErrNotFound; no row is created.
func (s *settingsService) Update(ctx context.Context, userID int64, patch domain.SettingsPatch) (*domain.UserSettings, error) {
	if err := validateStruct(patch); err != nil {
		return nil, err
	}

	var updated domain.UserSettings
	err := s.store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		current, err := repos.Settings().GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		patch.Apply(current)
		current.UpdatedAt = s.now().UTC()
		if err := repos.Settings().Update(ctx, *current); err != nil {
			return err
		}
		updated = *current
		return nil
	})
	if err != nil {
		return nil, storeErr("update settings", err)
	}
	return &updated, nil
}
