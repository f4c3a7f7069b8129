package sqldb

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"edunova/internal/domain"
	"edunova/internal/repository"
)

type ProgressRepository struct {
	db      DBTX
	dialect Dialect
}

func NewProgressRepository(db DBTX, dialect Dialect) repository.ProgressRepository {
	return &ProgressRepository{db: db, dialect: dialect}
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ProgressRecord, error) {
	query, args, err := r.dialect.builder().
		Select("id", "user_id", "content_type", "content_id", "progress", "completed", "last_accessed").
		From("user_progress").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("last_accessed DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, wrapErr("build list progress", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list progress", err)
	}
	defer rows.Close()

	records := make([]domain.ProgressRecord, 0)
	for rows.Next() {
		var rec domain.ProgressRecord
		var contentType string
		if err := rows.Scan(&rec.ID, &rec.UserID, &contentType, &rec.ContentID, &rec.Progress, &rec.Completed, &rec.LastAccessed); err != nil {
			return nil, wrapErr("scan progress", err)
		}
		rec.ContentType = domain.ProgressContentType(contentType)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate progress", err)
	}
	return records, nil
}

// Upsert relies on the unique (user_id, content_type, content_id) key so
// concurrent writers for the same key never produce a second row.
func (r *ProgressRepository) Upsert(ctx context.Context, rec *domain.ProgressRecord) error {
	if rec.LastAccessed.IsZero() {
		rec.LastAccessed = time.Now().UTC()
	}

	query, args, err := r.dialect.builder().
		Insert("user_progress").
		Columns("user_id", "content_type", "content_id", "progress", "completed", "last_accessed").
		Values(rec.UserID, string(rec.ContentType), rec.ContentID, rec.Progress, rec.Completed, rec.LastAccessed).
		Suffix(`ON CONFLICT (user_id, content_type, content_id) DO UPDATE SET
			progress = excluded.progress,
			completed = excluded.completed,
			last_accessed = excluded.last_accessed
		RETURNING id`).
		ToSql()
	if err != nil {
		return wrapErr("build upsert progress", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rec.ID); err != nil {
		return wrapErr("upsert progress", err)
	}
	return nil
}

func (r *ProgressRepository) Stats(ctx context.Context, userID int64) (domain.ProgressStats, error) {
	query, args, err := r.dialect.builder().
		Select(
			"COALESCE(SUM(CASE WHEN completed AND content_type = 'document' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN completed AND content_type = 'exercise' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN completed AND content_type = 'video' THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0)",
			"COALESCE(SUM(CASE WHEN NOT completed THEN 1 ELSE 0 END), 0)",
			"COALESCE(AVG(progress), 0)",
		).
		From("user_progress").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.ProgressStats{}, wrapErr("build progress stats", err)
	}

	var s domain.ProgressStats
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.CompletedDocuments,
		&s.CompletedExercises,
		&s.CompletedVideos,
		&s.Completed,
		&s.InProgress,
		&s.AverageProgress,
	); err != nil {
		return domain.ProgressStats{}, wrapErr("progress stats", err)
	}
	return s, nil
}
