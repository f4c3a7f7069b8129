package sqldb

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"edunova/internal/domain"
	"edunova/internal/repository"
)

var documentColumns = []string{
	"id", "title", "doc_type", "subject", "level", "description", "pages",
	"thumbnail", "asset_key", "created_at",
}

var videoColumns = []string{
	"id", "title", "subject", "level", "description", "duration", "views",
	"thumbnail", "asset_key", "created_at",
}

type ContentRepository struct {
	db      DBTX
	dialect Dialect
}

func NewContentRepository(db DBTX, dialect Dialect) repository.ContentRepository {
	return &ContentRepository{db: db, dialect: dialect}
}

// searchQuery builds the catalog select for table. Filter values are always
// bound as parameters.
func (r *ContentRepository) searchQuery(table string, columns []string, filter domain.ContentFilter) sq.SelectBuilder {
	b := r.dialect.builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	if filter.Search != "" {
		b = b.Where(sq.Or{
			r.dialect.contains("title", filter.Search),
			r.dialect.contains("description", filter.Search),
			r.dialect.contains("subject", filter.Search),
		})
	}
	if filter.Subject != "" {
		b = b.Where(sq.Eq{"subject": filter.Subject})
	}
	if filter.Level != "" {
		b = b.Where(sq.Eq{"level": filter.Level})
	}
	if filter.DocType != "" && table == "documents" {
		b = b.Where(sq.Eq{"doc_type": string(filter.DocType)})
	}
	return b
}

func (r *ContentRepository) SearchDocuments(ctx context.Context, filter domain.ContentFilter) ([]domain.Document, error) {
	query, args, err := r.searchQuery("documents", documentColumns, filter).ToSql()
	if err != nil {
		return nil, wrapErr("build search documents", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("search documents", err)
	}
	defer rows.Close()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, wrapErr("scan document", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate documents", err)
	}
	return docs, nil
}

func (r *ContentRepository) SearchVideos(ctx context.Context, filter domain.ContentFilter) ([]domain.Video, error) {
	query, args, err := r.searchQuery("videos", videoColumns, filter).ToSql()
	if err != nil {
		return nil, wrapErr("build search videos", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("search videos", err)
	}
	defer rows.Close()

	videos := make([]domain.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, wrapErr("scan video", err)
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("iterate videos", err)
	}
	return videos, nil
}

func (r *ContentRepository) GetDocument(ctx context.Context, id int64) (*domain.Document, error) {
	query, args, err := r.dialect.builder().
		Select(documentColumns...).
		From("documents").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, wrapErr("build get document", err)
	}

	doc, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("get document", err)
	}
	return doc, nil
}

func (r *ContentRepository) GetVideo(ctx context.Context, id int64) (*domain.Video, error) {
	query, args, err := r.dialect.builder().
		Select(videoColumns...).
		From("videos").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, wrapErr("build get video", err)
	}

	v, err := scanVideo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapErr("get video", err)
	}
	return v, nil
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var d domain.Document
	var docType string
	if err := row.Scan(
		&d.ID, &d.Title, &docType, &d.Subject, &d.Level, &d.Description, &d.Pages,
		&d.Thumbnail, &d.AssetKey, &d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.Type = domain.DocumentType(docType)
	return &d, nil
}

func scanVideo(row rowScanner) (*domain.Video, error) {
	var v domain.Video
	if err := row.Scan(
		&v.ID, &v.Title, &v.Subject, &v.Level, &v.Description, &v.Duration, &v.Views,
		&v.Thumbnail, &v.AssetKey, &v.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
