package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

func newTestAuthService() (*AuthService, *stubAccountRepo, *stubProfileRepo, *stubSessions) {
	profiles := newStubProfileRepo()
	accounts := newStubAccountRepo(profiles)
	sessions := newStubSessions()
	svc := NewAuthService(accounts, sessions, NewPasswordHasherWithCost(bcrypt.MinCost), zerolog.Nop())
	return svc, accounts, profiles, sessions
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, accounts, profiles, sessions := newTestAuthService()

	result, err := svc.Register(context.Background(), "alice", "Abcde123!")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.AccountID == "" || result.Token == "" {
		t.Fatalf("incomplete result: %+v", result)
	}

	stored, err := accounts.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if stored.PasswordHash == "Abcde123!" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Abcde123!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	// The empty profile row must exist as soon as registration returns.
	profile, err := profiles.Get(context.Background(), result.AccountID)
	if err != nil {
		t.Fatalf("profile row missing after registration: %v", err)
	}
	if profile.FullName != "" || profile.Address1 != "" {
		t.Fatalf("profile not empty after registration: %+v", profile)
	}

	accountID, err := sessions.Resolve(context.Background(), result.Token)
	if err != nil || accountID != result.AccountID {
		t.Fatalf("session does not resolve to new account: %v %q", err, accountID)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc, accounts, _, _ := newTestAuthService()

	weak := []string{"short", "onlylowercase1@", "ONLYUPPERCASE1@", "NoSpecialChar1", "12345678"}
	for _, password := range weak {
		if _, err := svc.Register(context.Background(), "bob", password); !errors.Is(err, domain.ErrWeakPassword) {
			t.Fatalf("password %q: expected ErrWeakPassword, got %v", password, err)
		}
	}
	if _, err := accounts.FindByUsername(context.Background(), "bob"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("rejected registration must not create an account")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, accounts, _, _ := newTestAuthService()

	first, err := svc.Register(context.Background(), "carol", "Abcde123!")
	if err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), "carol", "Other456?"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// The first account is unaffected by the failed attempt.
	stored, err := accounts.FindByUsername(context.Background(), "carol")
	if err != nil {
		t.Fatalf("first account gone: %v", err)
	}
	if stored.ID != first.AccountID {
		t.Fatalf("account id changed: %q != %q", stored.ID, first.AccountID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Abcde123!")); err != nil {
		t.Fatalf("first account's password changed: %v", err)
	}
}

func TestAuthService_RegisterThenLogin_SameAccount(t *testing.T) {
	svc, _, _, sessions := newTestAuthService()

	registered, err := svc.Register(context.Background(), "dave", "Abcde123!")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	loggedIn, err := svc.Login(context.Background(), "dave", "Abcde123!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.AccountID != registered.AccountID {
		t.Fatalf("login resolved to different account: %q != %q", loggedIn.AccountID, registered.AccountID)
	}

	// Both sessions resolve to the same account identity.
	for _, token := range []string{registered.Token, loggedIn.Token} {
		accountID, err := sessions.Resolve(context.Background(), token)
		if err != nil || accountID != registered.AccountID {
			t.Fatalf("token %q: %v %q", token, err, accountID)
		}
	}
}

func TestAuthService_Login_GenericError(t *testing.T) {
	svc, _, _, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), "erin", "Abcde123!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password and unknown username must be indistinguishable.
	_, wrongPassword := svc.Login(context.Background(), "erin", "Wrong456?")
	_, unknownUser := svc.Login(context.Background(), "ghost", "Abcde123!")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownUser)
	}
}

func TestAuthService_Login_CorruptStoredHash(t *testing.T) {
	svc, accounts, _, _ := newTestAuthService()

	accounts.accounts["mallory"] = &domain.Account{ID: "acc-raw", Username: "mallory", PasswordHash: "garbage"}

	_, err := svc.Login(context.Background(), "mallory", "Abcde123!")
	if !errors.Is(err, domain.ErrCorruptHash) {
		t.Fatalf("expected ErrCorruptHash, got %v", err)
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	svc, _, _, sessions := newTestAuthService()

	result, err := svc.Register(context.Background(), "frank", "Abcde123!")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := sessions.Resolve(context.Background(), result.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("revoked token still resolves: %v", err)
	}

	// Revoking again is a no-op, not an error.
	if err := svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("second logout errored: %v", err)
	}
}
