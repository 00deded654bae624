package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sugar-studio/booking-api/internal/domain"
)

type fakeUserRepo struct {
	users  map[string]domain.User
	nextID int
}

func newFakeUserRepo(seed ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]domain.User)}
	for _, u := range seed {
		repo.nextID++
		u.ID = fmt.Sprintf("user-%d", repo.nextID)
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, id string, u domain.User) (domain.User, error) {
	if _, ok := r.users[id]; !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	u.ID = id
	r.users[id] = u
	return u, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) (domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

func (r *fakeUserRepo) CredentialsMatch(_ context.Context, username, password string) (bool, error) {
	for _, u := range r.users {
		if u.Username == username && u.Password == password {
			return true, nil
		}
	}
	return false, nil
}

func TestUserService_Create(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo())

	created, err := svc.Create(context.Background(), domain.User{Username: "reception", Password: "letmein"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	if _, err := svc.Create(context.Background(), domain.User{Password: "letmein"}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for username, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.User{Username: "reception"}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for password, got %v", err)
	}
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo(domain.User{Username: "reception", Password: "letmein"}))

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"matching credentials", "reception", "letmein", true},
		{"wrong password", "reception", "nope", false},
		{"unknown user", "ghost", "letmein", false},
		{"empty username", "", "letmein", false},
		{"empty password", "reception", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ok, err := svc.Login(context.Background(), tt.username, tt.password)
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			if ok != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, ok)
			}
		})
	}
}

func TestUserService_GetByUsername(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newFakeUserRepo(domain.User{Username: "reception", Password: "letmein", Name: "Front Desk"}))

	u, err := svc.GetByUsername(context.Background(), "reception")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if u.Name != "Front Desk" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.GetByUsername(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
