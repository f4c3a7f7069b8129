package sqldb

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"edunova/internal/domain"
	"edunova/internal/repository"
)

var userColumns = []string{
	"id", "full_name", "email", "password_hash", "avatar", "level", "specialty",
	"join_date", "created_at", "updated_at",
}

type UserRepository struct {
	db      DBTX
	dialect Dialect
}

func NewUserRepository(db DBTX, dialect Dialect) repository.UserRepository {
	return &UserRepository{db: db, dialect: dialect}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.JoinDate.IsZero() {
		user.JoinDate = now
	}

	query, args, err := r.dialect.builder().
		Insert("users").
		Columns("full_name", "email", "password_hash", "avatar", "level", "specialty", "join_date", "created_at", "updated_at").
		Values(user.FullName, user.Email, user.PasswordHash, user.Avatar, user.Level, user.Specialty, user.JoinDate, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, wrapErr("build insert user", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, wrapErr("insert user", err)
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "get user by email", "email", email)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "get user by id", "id", id)
}

func (r *UserRepository) getOne(ctx context.Context, op, column string, value any) (*domain.User, error) {
	query, args, err := r.dialect.builder().
		Select(userColumns...).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, wrapErr("build "+op, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.Avatar,
		&user.Level,
		&user.Specialty,
		&user.JoinDate,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
