package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// TokenService signs and verifies auth tokens with the process-wide secret.
type TokenService interface {
	Sign(identity domain.Identity) (string, error)
	// Verify fails with domain.ErrUnauthenticated for empty, malformed,
	// tampered or expired tokens.
	Verify(token string) (domain.Identity, error)
}

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UserService defines account provisioning and login.
type UserService interface {
	// Register creates the account and returns it with a freshly signed token.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}
