package service

import (
	"context"

	"edunova/internal/domain"
	"edunova/internal/repository"
)

type fakeUsers struct {
	createFn     func(ctx context.Context, u *domain.User) (int64, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
}

func (f *fakeUsers) Create(ctx context.Context, u *domain.User) (int64, error) {
	return f.createFn(ctx, u)
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.getByIDFn(ctx, id)
}

type fakeSettings struct {
	createFn       func(ctx context.Context, s domain.UserSettings) error
	getFn          func(ctx context.Context, userID int64) (*domain.UserSettings, error)
	getForUpdateFn func(ctx context.Context, userID int64) (*domain.UserSettings, error)
	updateFn       func(ctx context.Context, s domain.UserSettings) error
}

func (f *fakeSettings) Create(ctx context.Context, s domain.UserSettings) error {
	return f.createFn(ctx, s)
}

func (f *fakeSettings) Get(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	return f.getFn(ctx, userID)
}

func (f *fakeSettings) GetForUpdate(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	return f.getForUpdateFn(ctx, userID)
}

func (f *fakeSettings) Update(ctx context.Context, s domain.UserSettings) error {
	return f.updateFn(ctx, s)
}

type fakeContent struct {
	searchDocumentsFn func(ctx context.Context, filter domain.ContentFilter) ([]domain.Document, error)
	searchVideosFn    func(ctx context.Context, filter domain.ContentFilter) ([]domain.Video, error)
	getDocumentFn     func(ctx context.Context, id int64) (*domain.Document, error)
	getVideoFn        func(ctx context.Context, id int64) (*domain.Video, error)
}

func (f *fakeContent) SearchDocuments(ctx context.Context, filter domain.ContentFilter) ([]domain.Document, error) {
	return f.searchDocumentsFn(ctx, filter)
}

func (f *fakeContent) SearchVideos(ctx context.Context, filter domain.ContentFilter) ([]domain.Video, error) {
	return f.searchVideosFn(ctx, filter)
}

func (f *fakeContent) GetDocument(ctx context.Context, id int64) (*domain.Document, error) {
	return f.getDocumentFn(ctx, id)
}

func (f *fakeContent) GetVideo(ctx context.Context, id int64) (*domain.Video, error) {
	return f.getVideoFn(ctx, id)
}

type fakeProgress struct {
	listFn   func(ctx context.Context, userID int64) ([]domain.ProgressRecord, error)
	upsertFn func(ctx context.Context, rec *domain.ProgressRecord) error
	statsFn  func(ctx context.Context, userID int64) (domain.ProgressStats, error)
}

func (f *fakeProgress) ListByUser(ctx context.Context, userID int64) ([]domain.ProgressRecord, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeProgress) Upsert(ctx context.Context, rec *domain.ProgressRecord) error {
	return f.upsertFn(ctx, rec)
}

func (f *fakeProgress) Stats(ctx context.Context, userID int64) (domain.ProgressStats, error) {
	return f.statsFn(ctx, userID)
}

// fakeStore hands the same fakes to transactional callers and records the
// outcome of each unit of work.
type fakeStore struct {
	users    *fakeUsers
	settings *fakeSettings
	content  *fakeContent
	progress *fakeProgress

	commits   int
	rollbacks int
}

func (s *fakeStore) Users() repository.UserRepository        { return s.users }
func (s *fakeStore) Settings() repository.SettingsRepository { return s.settings }
func (s *fakeStore) Content() repository.ContentRepository   { return s.content }
func (s *fakeStore) Progress() repository.ProgressRepository { return s.progress }

func (s *fakeStore) WithTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	if err := fn(ctx, s); err != nil {
		s.rollbacks++
		return err
	}
	s.commits++
	return nil
}
