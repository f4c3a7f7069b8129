package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"edunova/internal/domain"
	"edunova/internal/repository"
	"edunova/internal/storage"
)

// ContentService is the read-only document and video catalog.
type ContentService interface {
	SearchDocuments(ctx context.Context, filter domain.ContentFilter) ([]domain.Document, error)
	SearchVideos(ctx context.Context, filter domain.ContentFilter) ([]domain.Video, error)
	GetDocument(ctx context.Context, id int64) (*domain.Document, error)
	GetVideo(ctx context.Context, id int64) (*domain.Video, error)
}

type contentService struct {
	content repository.ContentRepository
	assets  storage.Service
	urlTTL  time.Duration
	logger  logrus.FieldLogger
}

// NewContentService builds the catalog. assets may be nil, in which case
// asset keys are handed out as they are stored.
func NewContentService(content repository.ContentRepository, assets storage.Service, urlTTL time.Duration, logger logrus.FieldLogger) ContentService {
	return &contentService{
		content: content,
		assets:  assets,
		urlTTL:  urlTTL,
		logger:  logger,
	}
}

func (s *contentService) SearchDocuments(ctx context.Context, filter domain.ContentFilter) ([]domain.Document, error) {
	filter = normalizeFilter(filter)
	if filter.DocType != "" && !filter.DocType.Valid() {
		return nil, domain.Validationf("type must be one of: course, exercise, sheet")
	}

	docs, err := s.content.SearchDocuments(ctx, filter)
	if err != nil {
		return nil, storeErr("search documents", err)
	}
	for i := range docs {
		s.resolveAsset(ctx, &docs[i].ContentItem)
	}
	return docs, nil
}

func (s *contentService) SearchVideos(ctx context.Context, filter domain.ContentFilter) ([]domain.Video, error) {
	filter = normalizeFilter(filter)
	filter.DocType = ""

	videos, err := s.content.SearchVideos(ctx, filter)
	if err != nil {
		return nil, storeErr("search videos", err)
	}
	for i := range videos {
		s.resolveAsset(ctx, &videos[i].ContentItem)
	}
	return videos, nil
}

func (s *contentService) GetDocument(ctx context.Context, id int64) (*domain.Document, error) {
	if id <= 0 {
		return nil, domain.Validationf("document id must be positive")
	}
	doc, err := s.content.GetDocument(ctx, id)
	if err != nil {
		return nil, storeErr("get document", err)
	}
	s.resolveAsset(ctx, &doc.ContentItem)
	return doc, nil
}

func (s *contentService) GetVideo(ctx context.Context, id int64) (*domain.Video, error) {
	if id <= 0 {
		return nil, domain.Validationf("video id must be positive")
	}
	v, err := s.content.GetVideo(ctx, id)
	if err != nil {
		return nil, storeErr("get video", err)
	}
	s.resolveAsset(ctx, &v.ContentItem)
	return v, nil
}

// resolveAsset fills AssetURL. A presign failure leaves the URL empty rather
// than failing the whole listing.
func (s *contentService) resolveAsset(ctx context.Context, item *domain.ContentItem) {
	if s.assets == nil || item.AssetKey == "" {
		item.AssetURL = item.AssetKey
		return
	}
	url, err := s.assets.GetObjectURL(ctx, item.AssetKey, s.urlTTL)
	if err != nil {
		s.logger.WithError(err).WithField("asset_key", item.AssetKey).Warn("presign asset url")
		return
	}
	item.AssetURL = url
}

func normalizeFilter(f domain.ContentFilter) domain.ContentFilter {
	return domain.ContentFilter{
		Search:  strings.TrimSpace(f.Search),
		Subject: strings.TrimSpace(f.Subject),
		Level:   strings.TrimSpace(f.Level),
		DocType: domain.DocumentType(strings.TrimSpace(string(f.DocType))),
	}
}
