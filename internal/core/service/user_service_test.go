package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/vidly/rental-system/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "user-" + copy.Email
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func newTestUserService(repo *stubUserRepo) (*UserService, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	return NewUserService(repo, tokens, zerolog.Nop()), tokens
}

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newTestUserService(repo)

	user, token, err := svc.Register(context.Background(), registerInput("Alice Smith", "Alice@Example.com", "pass1234"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.IsAdmin {
		t.Fatalf("new users must not be admins")
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if identity.UserID != user.ID {
		t.Fatalf("expected token subject %q, got %q", user.ID, identity.UserID)
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	svc, _ := newTestUserService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), registerInput("Nobody", "", "pass")); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput("Nobody", "a@b.com", "")); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc, _ := newTestUserService(newStubUserRepo())

	_, _, _ = svc.Register(context.Background(), registerInput("Bobby", "bob@example.com", "pass"))
	if _, _, err := svc.Register(context.Background(), registerInput("Bobby", "BOB@example.com", "pass2")); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newTestUserService(repo)

	registered, _, err := svc.Register(context.Background(), registerInput("Carol", "carol@example.com", "s3cret"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	repo.users[registered.ID].IsAdmin = true

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.ID != registered.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if !identity.IsAdmin {
		t.Fatalf("expected admin claim in token")
	}
}

func TestUserService_Login_InvalidPassword(t *testing.T) {
	svc, _ := newTestUserService(newStubUserRepo())

	_, _, _ = svc.Register(context.Background(), registerInput("Dave", "dave@example.com", "goodpass"))
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_UserNotFound(t *testing.T) {
	svc, _ := newTestUserService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Me(t *testing.T) {
	svc, _ := newTestUserService(newStubUserRepo())

	registered, _, err := svc.Register(context.Background(), registerInput("Erin", "erin@example.com", "pass"))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.Me(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if user.Email != "erin@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Me(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
