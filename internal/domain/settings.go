package domain

import "time"

// UserSettings is the per-user preference record, created with the user.
type UserSettings struct {
	UserID        int64
	Theme         string
	Language      string
	Notifications NotificationSettings
	Privacy       PrivacySettings
	Preferences   PlaybackPreferences
	UpdatedAt     time.Time
}

type NotificationSettings struct {
	Email      bool
	Push       bool
	NewCourses bool
	Reminders  bool
}

type PrivacySettings struct {
	ProfileVisibility string
	ShowProgress      bool
	AllowMessages     bool
}

type PlaybackPreferences struct {
	Autoplay        bool
	Subtitles       bool
	PlaybackSpeed   float64
	DownloadQuality string
}

// DefaultSettings returns the settings every new user starts with.
func DefaultSettings(userID int64) UserSettings {
	return UserSettings{
		UserID:   userID,
		Theme:    "auto",
		Language: "fr",
		Notifications: NotificationSettings{
			Email:      true,
			Push:       true,
			NewCourses: true,
			Reminders:  false,
		},
		Privacy: PrivacySettings{
			ProfileVisibility: "public",
			ShowProgress:      true,
			AllowMessages:     true,
		},
		Preferences: PlaybackPreferences{
			Autoplay:        false,
			Subtitles:       true,
			PlaybackSpeed:   1,
			DownloadQuality: "medium",
		},
	}
}

// SettingsPatch carries a partial settings update. Nil fields keep their
// stored value.
type SettingsPatch struct {
	Theme         *string                    `json:"theme" validate:"omitnil,oneof=light dark auto"`
	Language      *string                    `json:"language" validate:"omitnil,oneof=fr en ar"`
	Notifications *NotificationSettingsPatch `json:"notifications"`
	Privacy       *PrivacySettingsPatch      `json:"privacy"`
	Preferences   *PlaybackPreferencesPatch  `json:"preferences"`
}

type NotificationSettingsPatch struct {
	Email      *bool `json:"email"`
	Push       *bool `json:"push"`
	NewCourses *bool `json:"newCourses"`
	Reminders  *bool `json:"reminders"`
}

type PrivacySettingsPatch struct {
	ProfileVisibility *string `json:"profileVisibility" validate:"omitnil,oneof=public private friends"`
	ShowProgress      *bool   `json:"showProgress"`
	AllowMessages     *bool   `json:"allowMessages"`
}

type PlaybackPreferencesPatch struct {
	Autoplay        *bool    `json:"autoplay"`
	Subtitles       *bool    `json:"subtitles"`
	PlaybackSpeed   *float64 `json:"playbackSpeed" validate:"omitnil,gte=0.25,lte=3"`
	DownloadQuality *string  `json:"downloadQuality" validate:"omitnil,oneof=low medium high"`
}

// Apply merges the present fields of p into s.
func (p SettingsPatch) Apply(s *UserSettings) {
	setString(&s.Theme, p.Theme)
	setString(&s.Language, p.Language)
	if n := p.Notifications; n != nil {
		setBool(&s.Notifications.Email, n.Email)
		setBool(&s.Notifications.Push, n.Push)
		setBool(&s.Notifications.NewCourses, n.NewCourses)
		setBool(&s.Notifications.Reminders, n.Reminders)
	}
	if pr := p.Privacy; pr != nil {
		setString(&s.Privacy.ProfileVisibility, pr.ProfileVisibility)
		setBool(&s.Privacy.ShowProgress, pr.ShowProgress)
		setBool(&s.Privacy.AllowMessages, pr.AllowMessages)
	}
	if pf := p.Preferences; pf != nil {
		setBool(&s.Preferences.Autoplay, pf.Autoplay)
		setBool(&s.Preferences.Subtitles, pf.Subtitles)
		if pf.PlaybackSpeed != nil {
			s.Preferences.PlaybackSpeed = *pf.PlaybackSpeed
		}
		setString(&s.Preferences.DownloadQuality, pf.DownloadQuality)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
