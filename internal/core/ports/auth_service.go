package ports

import "context"

// AuthResult is returned after a successful registration or login.
type AuthResult struct {
	AccountID string
	Token     string
}

// AuthService defines the registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
}
