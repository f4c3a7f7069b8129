package repository

import "context"

// Repositories groups the repositories that can take part in one unit of work.
type Repositories interface {
	Users() UserRepository
	Settings() SettingsRepository
	Content() ContentRepository
	Progress() ProgressRepository
}

// Store hands out repositories bound to the connection pool and runs
// transactional units of work. Repositories passed to fn share one
// transaction that commits when fn returns nil and rolls back otherwise.
type Store interface {
	Repositories
	WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
