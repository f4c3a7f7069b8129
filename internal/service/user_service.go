package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"edunova/internal/domain"
	"edunova/internal/repository"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FullName  string `json:"fullName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Level     string `json:"level"`
	Specialty string `json:"specialty"`
}

// UserService describes user lifecycle operations.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type userService struct {
	store  repository.Store
	logger logrus.FieldLogger
	cost   int
}

func NewUserService(store repository.Store, logger logrus.FieldLogger) UserService {
	return newUserService(store, logger, bcrypt.DefaultCost)
}

func newUserService(store repository.Store, logger logrus.FieldLogger, cost int) *userService {
	return &userService{
		store:  store,
		logger: logger,
		cost:   cost,
	}
}

// Register creates the user and its default settings in one transaction.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Level = strings.TrimSpace(in.Level)
	in.Specialty = strings.TrimSpace(in.Specialty)

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.Validationf("password must be at most 72 bytes")
		}
		return nil, fmt.Errorf("hash password: %w: %w", domain.ErrInternal, err)
	}

	user := &domain.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Avatar:       DefaultAvatar(in.Email),
		Level:        in.Level,
		Specialty:    in.Specialty,
	}

	err = s.store.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		id, err := repos.Users().Create(ctx, user)
		if err != nil {
			return err
		}
		return repos.Settings().Create(ctx, domain.DefaultSettings(id))
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("email %q is already registered: %w", in.Email, domain.ErrConflict)
		}
		return nil, storeErr("register user", err)
	}

	return sanitizeUser(user), nil
}

// Authenticate returns ErrInvalidCredentials for both an unknown email and a
// wrong password. An unknown email still pays for one bcrypt comparison.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(password))
			s.logger.WithField("reason", "unknown_email").Info("login rejected")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, storeErr("authenticate", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WithFields(logrus.Fields{"reason": "wrong_password", "user_id": user.ID}).Info("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	return sanitizeUser(user), nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return sanitizeUser(user), nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func (s *userService) dummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("edunova-placeholder"), s.cost)
	})
	return dummyHash
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	out := *user
	out.PasswordHash = ""
	return &out
}
