package service

import (
	"context"
	"fmt"
	"time"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/logger"
	"skyfleet-backend/internal/metrics"
	"skyfleet-backend/internal/pricing"
	"skyfleet-backend/internal/repository"
)

type penaltyService struct {
	penaltyRepo repository.PenaltyRepository
	bookingRepo repository.BookingRepository
	droneRepo   repository.DroneRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
}

func NewPenaltyService(
	penaltyRepo repository.PenaltyRepository,
	bookingRepo repository.BookingRepository,
	droneRepo repository.DroneRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) PenaltyService {
	return &penaltyService{
		penaltyRepo: penaltyRepo,
		bookingRepo: bookingRepo,
		droneRepo:   droneRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

// RecordPenalty computes the charge for the given reason and persists it as
// PENDING. A computed amount that rounds to zero whole currency units is not
// persisted at all.
func (s *penaltyService) RecordPenalty(ctx context.Context, bookingID int64, reason domain.PenaltyReason) (*domain.Penalty, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, asNotFound(err, "booking")
	}
	drone, err := s.droneRepo.GetByID(ctx, booking.DroneID)
	if err != nil {
		return nil, asNotFound(err, "drone")
	}

	switch reason {
	case domain.PenaltyReasonLateReturn, domain.PenaltyReasonDamage, domain.PenaltyReasonCancellation:
	default:
		return nil, fmt.Errorf("%w: unknown penalty reason %q", ErrInvalidArgument, reason)
	}
	if booking.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: booking has no end time", ErrInvalidArgument)
	}

	amount := pricing.PenaltyAmountCents(reason, booking, drone, time.Now())
	if !pricing.Chargeable(amount) {
		return nil, ErrNoPenaltyApplicable
	}

	penalty := &domain.Penalty{
		BookingID:   booking.ID,
		Reason:      reason,
		AmountCents: amount,
		Status:      domain.PenaltyStatusPending,
	}
	if err := s.penaltyRepo.Create(ctx, penalty); err != nil {
		return nil, fmt.Errorf("record penalty: %w", err)
	}

	metrics.IncPenaltyRecorded(string(reason))
	logger.Info("penalty recorded",
		"penalty_id", penalty.ID,
		"booking_id", booking.ID,
		"reason", reason,
		"amount_cents", amount)
	s.notifyPenalty(ctx, booking, penalty)
	return penalty, nil
}

func (s *penaltyService) notifyPenalty(ctx context.Context, booking *domain.Booking, penalty *domain.Penalty) {
	if s.emailSvc == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("penalty notice email skipped", "penalty_id", penalty.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendPenaltyNotice(ctx, user, penalty); err != nil {
		logger.Warn("penalty notice email failed", "penalty_id", penalty.ID, "error", err)
	}
}

func (s *penaltyService) GetPenalty(ctx context.Context, id int64) (*domain.Penalty, error) {
	p, err := s.penaltyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "penalty")
	}
	return p, nil
}

func (s *penaltyService) ListPenalties(ctx context.Context) ([]domain.Penalty, error) {
	return s.penaltyRepo.List(ctx)
}

func (s *penaltyService) ListPenaltiesByBooking(ctx context.Context, bookingID int64) ([]domain.Penalty, error) {
	return s.penaltyRepo.ListByBooking(ctx, bookingID)
}

func (s *penaltyService) UpdatePenaltyStatus(ctx context.Context, id int64, status domain.PenaltyStatus) (*domain.Penalty, error) {
	p, err := s.penaltyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "penalty")
	}
	p.Status = status
	if err := s.penaltyRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update penalty status: %w", err)
	}
	return p, nil
}

func (s *penaltyService) DeletePenalty(ctx context.Context, id int64) error {
	if err := s.penaltyRepo.Delete(ctx, id); err != nil {
		return asNotFound(err, "penalty")
	}
	return nil
}
