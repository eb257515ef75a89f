package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
	"github.com/fuelquote/fuel-quote-api/internal/core/ports"
)

// AuthService implements registration, login, and logout.
type AuthService struct {
	accounts ports.AccountRepository
	sessions ports.SessionManager
	hasher   *PasswordHasher
	log      zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionManager, hasher *PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{accounts: accounts, sessions: sessions, hasher: hasher, log: log}
}

// Register creates an account with its empty delivery profile and issues a
// session for it. The account and profile rows are written atomically by the
// repository; a fault between them leaves neither behind.
func (s *AuthService) Register(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidPassword(password) {
		return nil, domain.ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Str("account_id", created.ID).Msg("account registered")

	return &ports.AuthResult{AccountID: created.ID, Token: token}, nil
}

// Login verifies credentials and issues a fresh session. An unknown username
// and a wrong password both return domain.ErrInvalidCredentials so the
// response never reveals which one occurred.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", account.ID).Msg("password verification failed")
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", account.ID).Msg("login succeeded")

	return &ports.AuthResult{AccountID: account.ID, Token: token}, nil
}

// Logout revokes the presented session token. Revoking an already-expired
// token is a no-op, not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}
