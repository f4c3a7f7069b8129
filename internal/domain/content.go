package domain

import "time"

// ContentKind selects which catalog a query runs against.
type ContentKind string

const (
	ContentKindDocument ContentKind = "document"
	ContentKindVideo    ContentKind = "video"
)

// DocumentType tags the pedagogical role of a document.
type DocumentType string

const (
	DocumentTypeCourse   DocumentType = "course"
	DocumentTypeExercise DocumentType = "exercise"
	DocumentTypeSheet    DocumentType = "sheet"
)

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeCourse, DocumentTypeExercise, DocumentTypeSheet:
		return true
	}
	return false
}

// ContentItem holds the attributes shared by documents and videos.
type ContentItem struct {
	ID          int64
	Title       string
	Subject     string
	Level       string
	Description string
	Thumbnail   string
	AssetKey    string
	AssetURL    string
	CreatedAt   time.Time
}

// Document is a readable catalog entry.
type Document struct {
	ContentItem
	Type  DocumentType
	Pages int
}

// Video is a playable catalog entry. Duration is a display string such as "45:30".
type Video struct {
	ContentItem
	Duration string
	Views    int64
}

// ContentFilter narrows a catalog search. Empty fields are ignored; the rest
// combine with AND. Search matches title, description or subject.
type ContentFilter struct {
	Search  string
	Subject string
	Level   string
	DocType DocumentType
}
