package service

import (
	"context"
	"math"
	"time"

	"edunova/internal/domain"
	"edunova/internal/repository"
)

// ProgressInput is one progress report for a piece of content.
type ProgressInput struct {
	ContentType domain.ProgressContentType
	ContentID   int64
	Progress    float64
	Completed   bool
}

// ProgressService tracks learning progress per user and content.
type ProgressService interface {
	List(ctx context.Context, userID int64) ([]domain.ProgressRecord, error)
	Upsert(ctx context.Context, userID int64, in ProgressInput) (*domain.ProgressRecord, error)
	Stats(ctx context.Context, userID int64) (domain.ProgressStats, error)
}

type progressService struct {
	progress repository.ProgressRepository
	now      func() time.Time
}

func NewProgressService(progress repository.ProgressRepository) ProgressService {
	return &progressService{progress: progress, now: time.Now}
}

func (s *progressService) List(ctx context.Context, userID int64) ([]domain.ProgressRecord, error) {
	records, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list progress", err)
	}
	return records, nil
}

// Upsert records the latest progress for (user, content type, content id).
// Values above 1 are clamped; negative or NaN values are rejected.
func (s *progressService) Upsert(ctx context.Context, userID int64, in ProgressInput) (*domain.ProgressRecord, error) {
	if !in.ContentType.Valid() {
		return nil, domain.Validationf("contentType must be one of: document, video, exercise")
	}
	if in.ContentID <= 0 {
		return nil, domain.Validationf("contentId must be positive")
	}
	if math.IsNaN(in.Progress) || in.Progress < 0 {
		return nil, domain.Validationf("progress must be between 0 and 1")
	}

	rec := &domain.ProgressRecord{
		UserID:       userID,
		ContentType:  in.ContentType,
		ContentID:    in.ContentID,
		Progress:     math.Min(in.Progress, 1),
		Completed:    in.Completed,
		LastAccessed: s.now().UTC(),
	}
	if err := s.progress.Upsert(ctx, rec); err != nil {
		return nil, storeErr("upsert progress", err)
	}
	return rec, nil
}

func (s *progressService) Stats(ctx context.Context, userID int64) (domain.ProgressStats, error) {
	stats, err := s.progress.Stats(ctx, userID)
	if err != nil {
		return domain.ProgressStats{}, storeErr("progress stats", err)
	}
	return stats, nil
}
