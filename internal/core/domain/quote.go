package domain

import (
	"errors"
	"time"
)

var ErrNoQuoteHistory = errors.New("no fuel quote history")

// FuelQuote is one historical fuel-delivery quote. Quotes are immutable once
// stored and are ordered by insertion time within their account. Price fields
// arrive already computed; nothing here derives them.
type FuelQuote struct {
	ID               string    `json:"id"`
	AccountID        string    `json:"account_id"`
	GallonsRequested float64   `json:"gallons_requested"`
	DeliveryAddress  string    `json:"delivery_address"`
	DeliveryDate     string    `json:"delivery_date"` // calendar date, YYYY-MM-DD
	SuggestedPrice   float64   `json:"suggested_price"`
	TotalAmountDue   float64   `json:"total_amount_due"`
	CreatedAt        time.Time `json:"created_at"`
}
