package service

import (
	"context"
	"fmt"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

// In-memory store doubles shared by the service tests. The account stub
// mirrors the production repository's transactional contract: creating an
// account also creates its empty profile row, and both appear together.

type stubProfileRepo struct {
	rows map[string]domain.Profile // keyed by account id
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{rows: make(map[string]domain.Profile)}
}

func (r *stubProfileRepo) Get(_ context.Context, accountID string) (*domain.Profile, error) {
	p, ok := r.rows[accountID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (r *stubProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	if _, ok := r.rows[profile.AccountID]; !ok {
		return domain.ErrProfileNotFound
	}
	r.rows[profile.AccountID] = *profile
	return nil
}

type stubAccountRepo struct {
	seq      int
	accounts map[string]*domain.Account // keyed by username
	profiles *stubProfileRepo
}

func newStubAccountRepo(profiles *stubProfileRepo) *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account), profiles: profiles}
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.accounts[account.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	r.seq++
	created := *account
	created.ID = fmt.Sprintf("acc-%d", r.seq)
	r.accounts[created.Username] = &created
	if r.profiles != nil {
		r.profiles.rows[created.ID] = domain.Profile{AccountID: created.ID}
	}
	out := created
	return &out, nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	account, ok := r.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *account
	return &clone, nil
}

type stubQuoteRepo struct {
	seq  int
	rows map[string][]domain.FuelQuote // keyed by account id, insertion order
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{rows: make(map[string][]domain.FuelQuote)}
}

func (r *stubQuoteRepo) Append(_ context.Context, quote *domain.FuelQuote) (string, error) {
	r.seq++
	stored := *quote
	stored.ID = fmt.Sprintf("quote-%d", r.seq)
	r.rows[stored.AccountID] = append(r.rows[stored.AccountID], stored)
	return stored.ID, nil
}

func (r *stubQuoteRepo) ListByAccount(_ context.Context, accountID string) ([]domain.FuelQuote, error) {
	quotes := r.rows[accountID]
	out := make([]domain.FuelQuote, len(quotes))
	copy(out, quotes)
	return out, nil
}

type stubSessions struct {
	seq    int
	active map[string]string // token -> account id
}

func newStubSessions() *stubSessions {
	return &stubSessions{active: make(map[string]string)}
}

func (s *stubSessions) Issue(_ context.Context, accountID string) (string, error) {
	s.seq++
	token := fmt.Sprintf("tok-%d", s.seq)
	s.active[token] = accountID
	return token, nil
}

func (s *stubSessions) Resolve(_ context.Context, token string) (string, error) {
	accountID, ok := s.active[token]
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return accountID, nil
}

func (s *stubSessions) Revoke(_ context.Context, token string) error {
	delete(s.active, token)
	return nil
}
