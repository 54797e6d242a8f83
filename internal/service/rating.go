package service

import (
	"context"
	"fmt"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
)

type ratingService struct {
	ratingRepo  repository.RatingRepository
	bookingRepo repository.BookingRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, bookingRepo repository.BookingRepository) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		bookingRepo: bookingRepo,
	}
}

// CreateRating records feedback against a booking. The user and drone are
// resolved from the booking rather than trusted from the caller.
func (s *ratingService) CreateRating(ctx context.Context, bookingID int64, value int32, feedback string) (*domain.Rating, error) {
	if value < 1 || value > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidArgument)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, asNotFound(err, "booking")
	}

	rating := &domain.Rating{
		BookingID:    booking.ID,
		UserID:       booking.UserID,
		DroneID:      booking.DroneID,
		RatingValue:  value,
		FeedbackText: feedback,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	return rating, nil
}

func (s *ratingService) ListRatings(ctx context.Context) ([]domain.Rating, error) {
	return s.ratingRepo.List(ctx)
}

func (s *ratingService) ListRatingsByDrone(ctx context.Context, droneID int64) ([]domain.Rating, error) {
	return s.ratingRepo.ListByDrone(ctx, droneID)
}

func (s *ratingService) ListRatingsByBooking(ctx context.Context, bookingID int64) ([]domain.Rating, error) {
	return s.ratingRepo.ListByBooking(ctx, bookingID)
}

func (s *ratingService) DeleteRating(ctx context.Context, id int64) error {
	if err := s.ratingRepo.Delete(ctx, id); err != nil {
		return asNotFound(err, "rating")
	}
	return nil
}
