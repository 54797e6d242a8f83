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

type bookingService struct {
	uow              repository.UnitOfWork
	bookingRepo      repository.BookingRepository
	userRepo         repository.UserRepository
	emailSvc         EmailService
	deliveryLeadDays int
}

func NewBookingService(
	uow repository.UnitOfWork,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	deliveryLeadDays int,
) BookingService {
	return &bookingService{
		uow:              uow,
		bookingRepo:      bookingRepo,
		userRepo:         userRepo,
		emailSvc:         emailSvc,
		deliveryLeadDays: deliveryLeadDays,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error) {
	if !in.UndertakingAccepted {
		return nil, fmt.Errorf("%w: undertaking not accepted", ErrPreconditionFailed)
	}
	now := time.Now()

	var result BookingResult
	err := s.uow.WithTx(ctx, func(tx *repository.Tx) error {
		user, err := tx.Users.GetByID(ctx, in.UserID)
		if err != nil {
			return asNotFound(err, "user")
		}
		drone, err := tx.Drones.GetByID(ctx, in.DroneID)
		if err != nil {
			return asNotFound(err, "drone")
		}

		if in.DeliveryAddress != "" && in.DeliveryAddress != user.Address {
			user.Address = in.DeliveryAddress
			if err := tx.Users.Update(ctx, user); err != nil {
				return fmt.Errorf("update delivery address: %w", err)
			}
		}

		baseRental, err := pricing.RentalAmountCents(in.StartTime, in.EndTime, drone.PricePerHourCents)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}

		booking := &domain.Booking{
			UserID:           in.UserID,
			DroneID:          in.DroneID,
			BookingDateTime:  now,
			DeliveryDateTime: now.AddDate(0, 0, s.deliveryLeadDays),
			StartTime:        in.StartTime,
			EndTime:          in.EndTime,
			TotalAmountCents: baseRental,
			Status:           domain.BookingStatusConfirmed,
			DeliverStatus:    domain.DeliveryStatusPending,
		}
		if err := tx.Bookings.Create(ctx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		attached, depositTotal, err := attachUndertakings(ctx, tx, booking.ID, drone)
		if err != nil {
			return err
		}
		if depositTotal > 0 {
			booking.TotalAmountCents = baseRental + depositTotal
			if err := tx.Bookings.Update(ctx, booking); err != nil {
				return fmt.Errorf("apply deposit total: %w", err)
			}
		}

		result = BookingResult{
			Booking:      booking,
			Undertakings: attached,
			DepositCents: depositTotal,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	s.notifyConfirmation(ctx, &result)
	return &result, nil
}

// attachUndertakings clones every distinct liability template into a
// booking-scoped undertaking with a deposit sized from the drone's price,
// and returns the clones together with the accumulated deposit total. An
// empty template catalog attaches nothing and contributes zero deposit.
func attachUndertakings(ctx context.Context, tx *repository.Tx, bookingID int64, drone *domain.Drone) ([]domain.Undertaking, int64, error) {
	templates, err := tx.Undertakings.ListDistinctTemplates(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list undertaking templates: %w", err)
	}

	deposit := pricing.SecurityDepositCents(drone.DronePriceCents)

	attached := make([]domain.Undertaking, 0, len(templates))
	var depositTotal int64
	for _, tmpl := range templates {
		u := domain.Undertaking{
			BookingID:          &bookingID,
			IsAccepted:         true,
			DepositAmountCents: deposit,
			DamageClauseText:   tmpl.DamageClauseText,
			IsTemplate:         false,
		}
		if err := tx.Undertakings.Create(ctx, &u); err != nil {
			return nil, 0, fmt.Errorf("attach undertaking: %w", err)
		}
		depositTotal += u.DepositAmountCents
		attached = append(attached, u)
	}
	return attached, depositTotal, nil
}

func (s *bookingService) notifyConfirmation(ctx context.Context, result *BookingResult) {
	if s.emailSvc == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, result.Booking.UserID)
	if err != nil {
		logger.Warn("booking confirmation email skipped", "booking_id", result.Booking.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendBookingConfirmation(ctx, user, result.Booking); err != nil {
		logger.Warn("booking confirmation email failed", "booking_id", result.Booking.ID, "error", err)
	}
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "booking")
	}
	return b, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *bookingService) ListBookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "booking")
	}
	b.Status = status
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	return b, nil
}

func (s *bookingService) UpdateDeliveryStatus(ctx context.Context, id int64, status domain.DeliveryStatus) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "booking")
	}
	b.DeliverStatus = status
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update delivery status: %w", err)
	}
	return b, nil
}

// DeleteBooking removes the booking and every dependent row. The dependents
// are deleted first so foreign keys never dangle mid-transaction.
func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	return s.uow.WithTx(ctx, func(tx *repository.Tx) error {
		exists, err := tx.Bookings.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("booking: %w", ErrNotFound)
		}

		if err := tx.Ratings.DeleteByBooking(ctx, id); err != nil {
			return fmt.Errorf("delete ratings: %w", err)
		}
		if err := tx.Penalties.DeleteByBooking(ctx, id); err != nil {
			return fmt.Errorf("delete penalties: %w", err)
		}
		if err := tx.Undertakings.DeleteByBooking(ctx, id); err != nil {
			return fmt.Errorf("delete undertakings: %w", err)
		}
		if err := tx.Payments.DeleteByBooking(ctx, id); err != nil {
			return fmt.Errorf("delete payments: %w", err)
		}
		if err := tx.Bookings.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}
		return nil
	})
}
