package ports

import (
	"context"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

// AppendQuoteInput carries an already-computed quote to be persisted.
type AppendQuoteInput struct {
	GallonsRequested float64
	DeliveryAddress  string
	DeliveryDate     string // calendar date, YYYY-MM-DD
	SuggestedPrice   float64
	TotalAmountDue   float64
}

// QuoteService defines account-scoped fuel quote history use cases.
type QuoteService interface {
	Append(ctx context.Context, accountID string, input AppendQuoteInput) (string, error)
	// List returns the account's quotes in insertion order, or
	// domain.ErrNoQuoteHistory when none exist.
	List(ctx context.Context, accountID string) ([]domain.FuelQuote, error)
}
