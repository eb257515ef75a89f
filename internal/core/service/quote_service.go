package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fuelquote/fuel-quote-api/internal/core/domain"
	"github.com/fuelquote/fuel-quote-api/internal/core/ports"
)

// QuoteService implements the append-only fuel quote history. Quote values
// arrive already computed; this service only persists and retrieves them.
type QuoteService struct {
	repo ports.QuoteRepository
	log  zerolog.Logger
}

func NewQuoteService(repo ports.QuoteRepository, log zerolog.Logger) *QuoteService {
	return &QuoteService{repo: repo, log: log}
}

func (s *QuoteService) Append(ctx context.Context, accountID string, input ports.AppendQuoteInput) (string, error) {
	quote := &domain.FuelQuote{
		AccountID:        accountID,
		GallonsRequested: input.GallonsRequested,
		DeliveryAddress:  input.DeliveryAddress,
		DeliveryDate:     input.DeliveryDate,
		SuggestedPrice:   input.SuggestedPrice,
		TotalAmountDue:   input.TotalAmountDue,
		CreatedAt:        time.Now().UTC(),
	}

	id, err := s.repo.Append(ctx, quote)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", accountID).Msg("failed to append fuel quote")
		return "", err
	}

	s.log.Info().Str("account_id", accountID).Str("quote_id", id).Msg("fuel quote recorded")
	return id, nil
}

func (s *QuoteService) List(ctx context.Context, accountID string) ([]domain.FuelQuote, error) {
	quotes, err := s.repo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, domain.ErrNoQuoteHistory
	}
	return quotes, nil
}
