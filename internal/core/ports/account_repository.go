package ports

import (
	"context"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// Create inserts the account together with its empty profile row in a
	// single transaction: either both exist afterwards or neither does.
	// Username uniqueness is enforced by the store's own constraint, not by a
	// prior existence check; a duplicate yields domain.ErrUsernameTaken.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
}
