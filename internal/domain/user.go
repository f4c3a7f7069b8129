package domain

import "time"

// User represents a registered learner.
type User struct {
	ID           int64
	FullName     string
	Email        string
	PasswordHash string
	Avatar       string
	Level        string
	Specialty    string
	JoinDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
