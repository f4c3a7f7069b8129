package sqldb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"edunova/internal/domain"
	"edunova/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := Open(ctx, DialectSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(ctx, db, DialectSQLite))
	return NewStore(db, DialectSQLite)
}

func createUser(t *testing.T, s *Store, email string) *domain.User {
	t.Helper()
	u := &domain.User{FullName: "Test User", Email: email, PasswordHash: "hash", Avatar: "a.png"}
	_, err := s.Users().Create(context.Background(), u)
	require.NoError(t, err)
	return u
}

func seedDocument(t *testing.T, db *sql.DB, title, docType, subject, level, description string, createdAt time.Time) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(
		`INSERT INTO documents (title, doc_type, subject, level, description, pages, thumbnail, asset_key, created_at)
		 VALUES (?, ?, ?, ?, ?, 10, '', 'docs/key.pdf', ?) RETURNING id`,
		title, docType, subject, level, description, createdAt.UTC(),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedVideo(t *testing.T, db *sql.DB, title, subject, level string, createdAt time.Time) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(
		`INSERT INTO videos (title, subject, level, description, duration, views, thumbnail, asset_key, created_at)
		 VALUES (?, ?, ?, '', '45:30', 1200, '', 'videos/key.mp4', ?) RETURNING id`,
		title, subject, level, createdAt.UTC(),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{
		"":           DialectSQLite,
		"sqlite":     DialectSQLite,
		"SQLite3":    DialectSQLite,
		"postgres":   DialectPostgres,
		"pgx":        DialectPostgres,
		"postgresql": DialectPostgres,
	} {
		got, err := ParseDialect(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseDialect("mysql")
	require.Error(t, err)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		_, err := repos.Users().Create(ctx, &domain.User{FullName: "X", Email: "x@y.z", PasswordHash: "h"})
		require.NoError(t, err)
		return domain.ErrInternal
	})
	require.ErrorIs(t, err, domain.ErrInternal)

	_, err = s.Users().GetByEmail(ctx, "x@y.z")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.Panics(t, func() {
		_ = s.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
			_, err := repos.Users().Create(ctx, &domain.User{FullName: "X", Email: "p@y.z", PasswordHash: "h"})
			require.NoError(t, err)
			panic("boom")
		})
	})

	_, err := s.Users().GetByEmail(ctx, "p@y.z")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	s := newTestStore(t)

	err := s.Settings().Create(context.Background(), domain.DefaultSettings(12345))
	require.Error(t, err)
}

func TestOpen_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	dsn := dir + "/nested/app.db"

	db, err := Open(context.Background(), DialectSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db, DialectSQLite))
	require.DirExists(t, dir+"/nested")
}

func TestWithSQLitePragmas(t *testing.T) {
	require.Equal(t, "a.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withSQLitePragmas("a.db"))
	require.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withSQLitePragmas("file:x?mode=memory"))
}
