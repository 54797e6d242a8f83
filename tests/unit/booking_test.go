package unit

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
	"skyfleet-backend/internal/service"
)

func newBookingFixture() (*MockUserRepo, *MockDroneRepo, *MockBookingRepo, *MockUndertakingRepo, *MockEmailService, service.BookingService, *repository.Tx) {
	userRepo := new(MockUserRepo)
	droneRepo := new(MockDroneRepo)
	bookingRepo := new(MockBookingRepo)
	undertakingRepo := new(MockUndertakingRepo)
	paymentRepo := new(MockPaymentRepo)
	penaltyRepo := new(MockPenaltyRepo)
	ratingRepo := new(MockRatingRepo)
	emailSvc := new(MockEmailService)

	tx := &repository.Tx{
		Users:        userRepo,
		Drones:       droneRepo,
		Bookings:     bookingRepo,
		Payments:     paymentRepo,
		Penalties:    penaltyRepo,
		Undertakings: undertakingRepo,
		Ratings:      ratingRepo,
	}
	svc := service.NewBookingService(&fakeUnitOfWork{tx: tx}, bookingRepo, userRepo, emailSvc, 3)
	return userRepo, droneRepo, bookingRepo, undertakingRepo, emailSvc, svc, tx
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(61 * time.Minute) // bills as 2 hours

	user := &domain.User{ID: 1, Name: "Asha", Email: "asha@example.com", Address: "Old Street 1", Role: domain.RoleUser}
	drone := &domain.Drone{
		ID:                2,
		Model:             "Falcon X2",
		PricePerHourCents: 50_000,    // 500 per hour
		DronePriceCents:   5_000_000, // 50,000 purchase price, 10% deposit band
	}
	templates := []domain.Undertaking{
		{ID: 10, DamageClauseText: "Renter covers rotor damage", IsTemplate: true},
		{ID: 11, DamageClauseText: "Renter covers water damage", IsTemplate: true},
	}

	t.Run("Success", func(t *testing.T) {
		userRepo, droneRepo, bookingRepo, undertakingRepo, emailSvc, svc, _ := newBookingFixture()

		userRepo.On("GetByID", ctx, int64(1)).Return(user, nil)
		droneRepo.On("GetByID", ctx, int64(2)).Return(drone, nil)
		userRepo.On("Update", ctx, user).Return(nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Booking).ID = 7
			}).Return(nil)
		undertakingRepo.On("ListDistinctTemplates", ctx).Return(templates, nil)
		undertakingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Undertaking")).Return(nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		emailSvc.On("SendBookingConfirmation", ctx, user, mock.AnythingOfType("*domain.Booking")).Return(nil)

		res, err := svc.CreateBooking(ctx, service.CreateBookingInput{
			UserID:              1,
			DroneID:             2,
			StartTime:           start,
			EndTime:             end,
			DeliveryAddress:     "New Street 5",
			UndertakingAccepted: true,
		})
		assert.NoError(t, err)
		assert.NotNil(t, res)
		// 2h * 50,000 base plus two 10% deposits of 500,000 each
		assert.Equal(t, int64(1_100_000), res.Booking.TotalAmountCents)
		assert.Equal(t, int64(1_000_000), res.DepositCents)
		assert.Equal(t, domain.BookingStatusConfirmed, res.Booking.Status)
		assert.Equal(t, domain.DeliveryStatusPending, res.Booking.DeliverStatus)
		assert.Equal(t, "New Street 5", user.Address)
		assert.Len(t, res.Undertakings, 2)
		for _, u := range res.Undertakings {
			assert.True(t, u.IsAccepted)
			assert.False(t, u.IsTemplate)
			assert.Equal(t, int64(7), *u.BookingID)
			assert.Equal(t, int64(500_000), u.DepositAmountCents)
		}
		delivery := res.Booking.DeliveryDateTime.Sub(res.Booking.BookingDateTime)
		assert.Equal(t, 72*time.Hour, delivery.Round(time.Hour))
	})

	t.Run("Undertaking Not Accepted", func(t *testing.T) {
		_, _, _, _, _, svc, _ := newBookingFixture()

		res, err := svc.CreateBooking(ctx, service.CreateBookingInput{
			UserID:              1,
			DroneID:             2,
			StartTime:           start,
			EndTime:             end,
			UndertakingAccepted: false,
		})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, service.ErrPreconditionFailed)
	})

	t.Run("Empty Template Catalog", func(t *testing.T) {
		userRepo, droneRepo, bookingRepo, undertakingRepo, emailSvc, svc, _ := newBookingFixture()

		userRepo.On("GetByID", ctx, int64(1)).Return(user, nil)
		droneRepo.On("GetByID", ctx, int64(2)).Return(drone, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		undertakingRepo.On("ListDistinctTemplates", ctx).Return([]domain.Undertaking{}, nil)
		emailSvc.On("SendBookingConfirmation", ctx, user, mock.AnythingOfType("*domain.Booking")).Return(nil)

		res, err := svc.CreateBooking(ctx, service.CreateBookingInput{
			UserID:              1,
			DroneID:             2,
			StartTime:           start,
			EndTime:             end,
			UndertakingAccepted: true,
		})
		assert.NoError(t, err)
		assert.Empty(t, res.Undertakings)
		assert.Equal(t, int64(0), res.DepositCents)
		assert.Equal(t, int64(100_000), res.Booking.TotalAmountCents)
		// Without deposits the total never gets rewritten
		bookingRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	})

	t.Run("Invalid Interval", func(t *testing.T) {
		userRepo, droneRepo, _, _, _, svc, _ := newBookingFixture()

		userRepo.On("GetByID", ctx, int64(1)).Return(user, nil)
		droneRepo.On("GetByID", ctx, int64(2)).Return(drone, nil)

		res, err := svc.CreateBooking(ctx, service.CreateBookingInput{
			UserID:              1,
			DroneID:             2,
			StartTime:           end,
			EndTime:             start,
			UndertakingAccepted: true,
		})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("Drone Not Found", func(t *testing.T) {
		userRepo, droneRepo, _, _, _, svc, _ := newBookingFixture()

		userRepo.On("GetByID", ctx, int64(1)).Return(user, nil)
		droneRepo.On("GetByID", ctx, int64(99)).Return(nil, sql.ErrNoRows)

		res, err := svc.CreateBooking(ctx, service.CreateBookingInput{
			UserID:              1,
			DroneID:             99,
			StartTime:           start,
			EndTime:             end,
			UndertakingAccepted: true,
		})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestBookingService_DeleteBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes All Dependents", func(t *testing.T) {
		_, _, bookingRepo, undertakingRepo, _, svc, tx := newBookingFixture()
		paymentRepo := tx.Payments.(*MockPaymentRepo)
		penaltyRepo := tx.Penalties.(*MockPenaltyRepo)
		ratingRepo := tx.Ratings.(*MockRatingRepo)

		bookingRepo.On("Exists", ctx, int64(7)).Return(true, nil)
		ratingRepo.On("DeleteByBooking", ctx, int64(7)).Return(nil)
		penaltyRepo.On("DeleteByBooking", ctx, int64(7)).Return(nil)
		undertakingRepo.On("DeleteByBooking", ctx, int64(7)).Return(nil)
		paymentRepo.On("DeleteByBooking", ctx, int64(7)).Return(nil)
		bookingRepo.On("Delete", ctx, int64(7)).Return(nil)

		err := svc.DeleteBooking(ctx, 7)
		assert.NoError(t, err)
		ratingRepo.AssertCalled(t, "DeleteByBooking", ctx, int64(7))
		penaltyRepo.AssertCalled(t, "DeleteByBooking", ctx, int64(7))
		undertakingRepo.AssertCalled(t, "DeleteByBooking", ctx, int64(7))
		paymentRepo.AssertCalled(t, "DeleteByBooking", ctx, int64(7))
		bookingRepo.AssertCalled(t, "Delete", ctx, int64(7))
	})

	t.Run("Missing Booking", func(t *testing.T) {
		_, _, bookingRepo, _, _, svc, _ := newBookingFixture()
		bookingRepo.On("Exists", ctx, int64(8)).Return(false, nil)

		err := svc.DeleteBooking(ctx, 8)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestBookingService_UpdateBookingStatus(t *testing.T) {
	ctx := context.Background()
	_, _, bookingRepo, _, _, svc, _ := newBookingFixture()

	booking := &domain.Booking{ID: 7, Status: domain.BookingStatusConfirmed}
	bookingRepo.On("GetByID", ctx, int64(7)).Return(booking, nil)
	bookingRepo.On("Update", ctx, booking).Return(nil)

	updated, err := svc.UpdateBookingStatus(ctx, 7, domain.BookingStatusCancelled)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, updated.Status)
}

func TestBookingService_UpdateDeliveryStatus(t *testing.T) {
	ctx := context.Background()
	_, _, bookingRepo, _, _, svc, _ := newBookingFixture()

	booking := &domain.Booking{ID: 7, Status: domain.BookingStatusConfirmed, DeliverStatus: domain.DeliveryStatusShipped}
	bookingRepo.On("GetByID", ctx, int64(7)).Return(booking, nil)
	bookingRepo.On("Update", ctx, booking).Return(nil)

	updated, err := svc.UpdateDeliveryStatus(ctx, 7, domain.DeliveryStatusDelivered)
	assert.NoError(t, err)
	assert.Equal(t, domain.DeliveryStatusDelivered, updated.DeliverStatus)
}
