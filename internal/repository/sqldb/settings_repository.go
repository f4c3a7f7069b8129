package sqldb

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"edunova/internal/domain"
	"edunova/internal/repository"
)

var settingsColumns = []string{
	"user_id", "theme", "language",
	"notify_email", "notify_push", "notify_new_courses", "notify_reminders",
	"profile_visibility", "show_progress", "allow_messages",
	"autoplay", "subtitles", "playback_speed", "download_quality",
	"updated_at",
}

type SettingsRepository struct {
	db      DBTX
	dialect Dialect
}

func NewSettingsRepository(db DBTX, dialect Dialect) repository.SettingsRepository {
	return &SettingsRepository{db: db, dialect: dialect}
}

func (r *SettingsRepository) Create(ctx context.Context, s domain.UserSettings) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}

	query, args, err := r.dialect.builder().
		Insert("user_settings").
		Columns(settingsColumns...).
		Values(
			s.UserID, s.Theme, s.Language,
			s.Notifications.Email, s.Notifications.Push, s.Notifications.NewCourses, s.Notifications.Reminders,
			s.Privacy.ProfileVisibility, s.Privacy.ShowProgress, s.Privacy.AllowMessages,
			s.Preferences.Autoplay, s.Preferences.Subtitles, s.Preferences.PlaybackSpeed, s.Preferences.DownloadQuality,
			s.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return wrapErr("build insert settings", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return wrapErr("insert settings", err)
	}
	return nil
}

func (r *SettingsRepository) Get(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	return r.get(ctx, userID, false)
}

func (r *SettingsRepository) GetForUpdate(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	return r.get(ctx, userID, true)
}

func (r *SettingsRepository) get(ctx context.Context, userID int64, lock bool) (*domain.UserSettings, error) {
	b := r.dialect.builder().
		Select(settingsColumns...).
		From("user_settings").
		Where(sq.Eq{"user_id": userID})
	if lock && r.dialect == DialectPostgres {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, wrapErr("build select settings", err)
	}

	var s domain.UserSettings
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.UserID, &s.Theme, &s.Language,
		&s.Notifications.Email, &s.Notifications.Push, &s.Notifications.NewCourses, &s.Notifications.Reminders,
		&s.Privacy.ProfileVisibility, &s.Privacy.ShowProgress, &s.Privacy.AllowMessages,
		&s.Preferences.Autoplay, &s.Preferences.Subtitles, &s.Preferences.PlaybackSpeed, &s.Preferences.DownloadQuality,
		&s.UpdatedAt,
	); err != nil {
		return nil, wrapErr("select settings", err)
	}
	return &s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, s domain.UserSettings) error {
	query, args, err := r.dialect.builder().
		Update("user_settings").
		SetMap(map[string]any{
			"theme":              s.Theme,
			"language":           s.Language,
			"notify_email":       s.Notifications.Email,
			"notify_push":        s.Notifications.Push,
			"notify_new_courses": s.Notifications.NewCourses,
			"notify_reminders":   s.Notifications.Reminders,
			"profile_visibility": s.Privacy.ProfileVisibility,
			"show_progress":      s.Privacy.ShowProgress,
			"allow_messages":     s.Privacy.AllowMessages,
			"autoplay":           s.Preferences.Autoplay,
			"subtitles":          s.Preferences.Subtitles,
			"playback_speed":     s.Preferences.PlaybackSpeed,
			"download_quality":   s.Preferences.DownloadQuality,
			"updated_at":         s.UpdatedAt,
		}).
		Where(sq.Eq{"user_id": s.UserID}).
		ToSql()
	if err != nil {
		return wrapErr("build update settings", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapErr("update settings", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr("settings rows affected", err)
	}
	if n == 0 {
		return fmt.Errorf("update settings for user %d: %w", s.UserID, domain.ErrNotFound)
	}
	return nil
}
