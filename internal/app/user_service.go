package app

import (
	"context"
	"fmt"

	"github.com/sugar-studio/booking-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Update(ctx context.Context, id string, u domain.User) (domain.User, error)
	Delete(ctx context.Context, id string) (domain.User, error)
	CredentialsMatch(ctx context.Context, username, password string) (bool, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if u.Username == "" {
		return domain.User{}, fmt.Errorf("%w: username", domain.ErrMissingField)
	}
	if u.Password == "" {
		return domain.User{}, fmt.Errorf("%w: password", domain.ErrMissingField)
	}
	return s.repo.Create(ctx, u)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) Update(ctx context.Context, id string, u domain.User) (domain.User, error) {
	return s.repo.Update(ctx, id, u)
}

func (s *UserService) Delete(ctx context.Context, id string) (domain.User, error) {
	return s.repo.Delete(ctx, id)
}

// Login reports whether the given username and password match a stored user.
// A failed match carries no detail about which of the two was wrong.
func (s *UserService) Login(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	return s.repo.CredentialsMatch(ctx, username, password)
}
