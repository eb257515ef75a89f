package ports

import (
	"context"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
)

// ProfileRepository defines persistence operations for delivery profiles.
// The empty profile row is created by AccountRepository.Create; this
// interface only reads and replaces it.
type ProfileRepository interface {
	Get(ctx context.Context, accountID string) (*domain.Profile, error)
	// Update replaces every profile field atomically. The caller supplies the
	// full field set; absent optional fields are stored empty.
	Update(ctx context.Context, profile *domain.Profile) error
}
