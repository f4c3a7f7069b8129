package http

import (
	"time"

	"edunova/internal/domain"
)

type UserResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Level     string    `json:"level"`
	Specialty string    `json:"specialty"`
	JoinDate  time.Time `json:"joinDate"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type DocumentResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Subject     string    `json:"subject"`
	Level       string    `json:"level"`
	Thumbnail   string    `json:"thumbnail"`
	Description string    `json:"description"`
	Pages       int       `json:"pages"`
	DownloadURL string    `json:"downloadUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type VideoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Subject     string    `json:"subject"`
	Level       string    `json:"level"`
	Duration    string    `json:"duration"`
	Thumbnail   string    `json:"thumbnail"`
	Description string    `json:"description"`
	Views       int64     `json:"views"`
	VideoURL    string    `json:"videoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SettingsResponse struct {
	Theme         string                `json:"theme"`
	Language      string                `json:"language"`
	Notifications NotificationsResponse `json:"notifications"`
	Privacy       PrivacyResponse       `json:"privacy"`
	Preferences   PreferencesResponse   `json:"preferences"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

type NotificationsResponse struct {
	Email      bool `json:"email"`
	Push       bool `json:"push"`
	NewCourses bool `json:"newCourses"`
	Reminders  bool `json:"reminders"`
}

type PrivacyResponse struct {
	ProfileVisibility string `json:"profileVisibility"`
	ShowProgress      bool   `json:"showProgress"`
	AllowMessages     bool   `json:"allowMessages"`
}

type PreferencesResponse struct {
	Autoplay        bool    `json:"autoplay"`
	Subtitles       bool    `json:"subtitles"`
	PlaybackSpeed   float64 `json:"playbackSpeed"`
	DownloadQuality string  `json:"downloadQuality"`
}

type ProgressResponse struct {
	ID           int64     `json:"id"`
	ContentType  string    `json:"contentType"`
	ContentID    int64     `json:"contentId"`
	Progress     float64   `json:"progress"`
	Completed    bool      `json:"completed"`
	LastAccessed time.Time `json:"lastAccessed"`
}

type StatsResponse struct {
	Documents       int     `json:"documents"`
	Exercises       int     `json:"exercises"`
	Videos          int     `json:"videos"`
	Completed       int     `json:"completed"`
	InProgress      int     `json:"inProgress"`
	AverageProgress float64 `json:"averageProgress"`
}

func userToResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Level:     u.Level,
		Specialty: u.Specialty,
		JoinDate:  u.JoinDate,
	}
}

func documentToResponse(d domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Type:        string(d.Type),
		Subject:     d.Subject,
		Level:       d.Level,
		Thumbnail:   d.Thumbnail,
		Description: d.Description,
		Pages:       d.Pages,
		DownloadURL: d.AssetURL,
		CreatedAt:   d.CreatedAt,
	}
}

func videoToResponse(v domain.Video) VideoResponse {
	return VideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		Subject:     v.Subject,
		Level:       v.Level,
		Duration:    v.Duration,
		Thumbnail:   v.Thumbnail,
		Description: v.Description,
		Views:       v.Views,
		VideoURL:    v.AssetURL,
		CreatedAt:   v.CreatedAt,
	}
}

func settingsToResponse(s domain.UserSettings) SettingsResponse {
	return SettingsResponse{
		Theme:    s.Theme,
		Language: s.Language,
		Notifications: NotificationsResponse{
			Email:      s.Notifications.Email,
			Push:       s.Notifications.Push,
			NewCourses: s.Notifications.NewCourses,
			Reminders:  s.Notifications.Reminders,
		},
		Privacy: PrivacyResponse{
			ProfileVisibility: s.Privacy.ProfileVisibility,
			ShowProgress:      s.Privacy.ShowProgress,
			AllowMessages:     s.Privacy.AllowMessages,
		},
		Preferences: PreferencesResponse{
			Autoplay:        s.Preferences.Autoplay,
			Subtitles:       s.Preferences.Subtitles,
			PlaybackSpeed:   s.Preferences.PlaybackSpeed,
			DownloadQuality: s.Preferences.DownloadQuality,
		},
		UpdatedAt: s.UpdatedAt,
	}
}

func progressToResponse(p domain.ProgressRecord) ProgressResponse {
	return ProgressResponse{
		ID:           p.ID,
		ContentType:  string(p.ContentType),
		ContentID:    p.ContentID,
		Progress:     p.Progress,
		Completed:    p.Completed,
		LastAccessed: p.LastAccessed,
	}
}

func statsToResponse(s domain.ProgressStats) StatsResponse {
	return StatsResponse{
		Documents:       s.CompletedDocuments,
		Exercises:       s.CompletedExercises,
		Videos:          s.CompletedVideos,
		Completed:       s.Completed,
		InProgress:      s.InProgress,
		AverageProgress: s.AverageProgress,
	}
}
