package sqldb

import (
	"context"
	"database/sql"

	"edunova/internal/repository"
)

// Store binds the repositories to one database and dialect.
type Store struct {
	db      *sql.DB
	dialect Dialect
	repos
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect, repos: newRepos(db, dialect)}
}

func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Dialect() Dialect { return s.dialect }

// WithTx runs fn with repositories that share a single transaction.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	return WithTx(ctx, s.db, nil, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, newRepos(tx, s.dialect))
	})
}

type repos struct {
	users    repository.UserRepository
	settings repository.SettingsRepository
	content  repository.ContentRepository
	progress repository.ProgressRepository
}

func newRepos(db DBTX, dialect Dialect) repos {
	return repos{
		users:    NewUserRepository(db, dialect),
		settings: NewSettingsRepository(db, dialect),
		content:  NewContentRepository(db, dialect),
		progress: NewProgressRepository(db, dialect),
	}
}

func (r repos) Users() repository.UserRepository        { return r.users }
func (r repos) Settings() repository.SettingsRepository { return r.settings }
func (r repos) Content() repository.ContentRepository   { return r.content }
func (r repos) Progress() repository.ProgressRepository { return r.progress }

var _ repository.Store = (*Store)(nil)
