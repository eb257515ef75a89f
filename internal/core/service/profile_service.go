package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
	"github.com/fuelquote/fuel-quote-api/internal/core/ports"
)

// ProfileService implements account-scoped profile reads and full-overwrite
// updates.
type ProfileService struct {
	repo ports.ProfileRepository
	log  zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, log: log}
}

func (s *ProfileService) Get(ctx context.Context, accountID string) (*domain.Profile, error) {
	return s.repo.Get(ctx, accountID)
}

// Update replaces the whole profile. Omitted optional fields arrive empty in
// the input and are stored empty; no residue from a previous update survives.
func (s *ProfileService) Update(ctx context.Context, accountID string, input ports.UpdateProfileInput) error {
	profile := &domain.Profile{
		AccountID: accountID,
		FullName:  input.FullName,
		Address1:  input.Address1,
		Address2:  input.Address2,
		City:      input.City,
		State:     input.State,
		Zipcode:   input.Zipcode,
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return err
	}

	s.log.Info().Str("account_id", accountID).Msg("profile updated")
	return nil
}
