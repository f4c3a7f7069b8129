package repository

import (
	"context"

	"edunova/internal/domain"
)

// ContentRepository reads the document and video catalogs.
type ContentRepository interface {
	SearchDocuments(ctx context.Context, filter domain.ContentFilter) ([]domain.Document, error)
	SearchVideos(ctx context.Context, filter domain.ContentFilter) ([]domain.Video, error)
	GetDocument(ctx context.Context, id int64) (*domain.Document, error)
	GetVideo(ctx context.Context, id int64) (*domain.Video, error)
}
