package ports

import (
	"context"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

// QuoteRepository defines append-only persistence for fuel quote history.
type QuoteRepository interface {
	// Append stores an immutable quote record and returns its identifier.
	Append(ctx context.Context, quote *domain.FuelQuote) (string, error)
	// ListByAccount returns the account's quotes in ascending insertion
	// order. Rows are scoped strictly to the given account; no filter
	// combination can return another account's history.
	ListByAccount(ctx context.Context, accountID string) ([]domain.FuelQuote, error)
}
