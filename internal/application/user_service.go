package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/devfood/foodcourt/internal/domain/entity"
	"github.com/devfood/foodcourt/internal/domain/repository"
	"github.com/devfood/foodcourt/pkg/helpers"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidRole  = errors.New("invalid role")
)

// UserService owns the identity store: registration, profile reads and
// edits, and deletion.
type UserService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Address  string
	Role     string
}

// Register creates a new user. Duplicate emails are rejected and the
// prior record is left untouched. The password is stored as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	role := entity.Role(in.Role)
	if in.Role == "" {
		role = entity.RoleCustomer
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:    in.Email,
		Password: hash,
		Name:     in.Name,
		Address:  in.Address,
		Role:     role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("email", u.Email).Info("user registered")
	}
	return u, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, email, name, address string) error {
	err := s.Repo.Update(ctx, email, name, address)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *UserService) Delete(ctx context.Context, email string) error {
	err := s.Repo.Delete(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
