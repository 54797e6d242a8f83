package service

import (
	"context"
	"fmt"
	"strings"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
)

type undertakingService struct {
	undertakingRepo repository.UndertakingRepository
}

func NewUndertakingService(undertakingRepo repository.UndertakingRepository) UndertakingService {
	return &undertakingService{undertakingRepo: undertakingRepo}
}

func (s *undertakingService) CreateTemplate(ctx context.Context, clauseText string, depositCents int64) (*domain.Undertaking, error) {
	clauseText = strings.TrimSpace(clauseText)
	if clauseText == "" {
		return nil, fmt.Errorf("%w: clause text is required", ErrInvalidArgument)
	}
	if depositCents < 0 {
		return nil, fmt.Errorf("%w: deposit must not be negative", ErrInvalidArgument)
	}

	u := &domain.Undertaking{
		DepositAmountCents: depositCents,
		DamageClauseText:   clauseText,
		IsTemplate:         true,
	}
	if err := s.undertakingRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create undertaking template: %w", err)
	}
	return u, nil
}

// ListTemplates returns the catalog shown to renters at checkout, one row
// per unique clause text.
func (s *undertakingService) ListTemplates(ctx context.Context) ([]domain.Undertaking, error) {
	return s.undertakingRepo.ListDistinctTemplates(ctx)
}

func (s *undertakingService) GetUndertaking(ctx context.Context, id int64) (*domain.Undertaking, error) {
	u, err := s.undertakingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "undertaking")
	}
	return u, nil
}

func (s *undertakingService) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Undertaking, error) {
	return s.undertakingRepo.ListByBooking(ctx, bookingID)
}

func (s *undertakingService) DeleteTemplate(ctx context.Context, id int64) error {
	u, err := s.undertakingRepo.GetByID(ctx, id)
	if err != nil {
		return asNotFound(err, "undertaking")
	}
	if !u.IsTemplate {
		return fmt.Errorf("%w: undertaking %d is attached to a booking", ErrPreconditionFailed, id)
	}
	return s.undertakingRepo.Delete(ctx, id)
}
