package ports

import (
	"context"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

// UpdateProfileInput carries the full profile field set. Address2 is the only
// optional field; when absent it is stored empty.
type UpdateProfileInput struct {
	FullName string
	Address1 string
	Address2 string
	City     string
	State    string
	Zipcode  string
}

// ProfileService defines account-scoped profile use cases.
type ProfileService interface {
	Get(ctx context.Context, accountID string) (*domain.Profile, error)
	Update(ctx context.Context, accountID string, input UpdateProfileInput) error
}
