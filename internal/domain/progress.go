package domain

import "time"

// ProgressContentType identifies what a progress record points at.
type ProgressContentType string

const (
	ProgressDocument ProgressContentType = "document"
	ProgressVideo    ProgressContentType = "video"
	ProgressExercise ProgressContentType = "exercise"
)

// Valid reports whether t is a trackable content type.
func (t ProgressContentType) Valid() bool {
	switch t {
	case ProgressDocument, ProgressVideo, ProgressExercise:
		return true
	}
	return false
}

// ProgressRecord is unique per (UserID, ContentType, ContentID).
type ProgressRecord struct {
	ID           int64
	UserID       int64
	ContentType  ProgressContentType
	ContentID    int64
	Progress     float64
	Completed    bool
	LastAccessed time.Time
}

// ProgressStats summarises a user's progress records.
type ProgressStats struct {
	CompletedDocuments int
	CompletedExercises int
	CompletedVideos    int
	Completed          int
	InProgress         int
	AverageProgress    float64
}
