package unit

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/gateway"
	"skyfleet-backend/internal/repository"
	"skyfleet-backend/internal/service"
)

const testKeySecret = "test-gateway-secret"

func newPaymentFixture() (*MockPaymentRepo, *MockBookingRepo, *MockUserRepo, *MockGateway, *MockEmailService, service.PaymentService) {
	paymentRepo := new(MockPaymentRepo)
	bookingRepo := new(MockBookingRepo)
	userRepo := new(MockUserRepo)
	gw := new(MockGateway)
	emailSvc := new(MockEmailService)

	tx := &repository.Tx{
		Users:    userRepo,
		Bookings: bookingRepo,
		Payments: paymentRepo,
	}
	svc := service.NewPaymentService(&fakeUnitOfWork{tx: tx}, paymentRepo, bookingRepo, userRepo, gw, testKeySecret, emailSvc)
	return paymentRepo, bookingRepo, userRepo, gw, emailSvc, svc
}

func TestPaymentService_CreateOrder(t *testing.T) {
	ctx := context.Background()
	booking := &domain.Booking{ID: 7, UserID: 1, TotalAmountCents: 1_100_000, Status: domain.BookingStatusConfirmed}

	t.Run("Success", func(t *testing.T) {
		paymentRepo, bookingRepo, _, gw, _, svc := newPaymentFixture()

		bookingRepo.On("GetByID", ctx, int64(7)).Return(booking, nil)
		gw.On("CreateOrder", ctx, int64(1_100_000), "INR", "7").
			Return(&gateway.Order{ID: "order_abc", Receipt: "7", Currency: "INR", Status: "created", Amount: 1_100_000}, nil)
		paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Payment).ID = 42
			}).Return(nil)

		payment, err := svc.CreateOrder(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), payment.BookingID)
		assert.Equal(t, "order_abc", payment.RazorpayOrderID)
		assert.Equal(t, domain.PaymentStatusPending, payment.Status)
		assert.Equal(t, domain.PaymentMethodUnknown, payment.PaymentMethod)
		assert.Equal(t, int64(1_100_000), payment.AmountPaidCents)
	})

	t.Run("Booking Not Found", func(t *testing.T) {
		_, bookingRepo, _, _, _, svc := newPaymentFixture()

		bookingRepo.On("GetByID", ctx, int64(99)).Return(nil, sql.ErrNoRows)

		payment, err := svc.CreateOrder(ctx, 99)
		assert.Nil(t, payment)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("Gateway Failure", func(t *testing.T) {
		_, bookingRepo, _, gw, _, svc := newPaymentFixture()

		bookingRepo.On("GetByID", ctx, int64(7)).Return(booking, nil)
		gw.On("CreateOrder", ctx, int64(1_100_000), "INR", "7").
			Return(nil, errors.New("connection refused"))

		payment, err := svc.CreateOrder(ctx, 7)
		assert.Nil(t, payment)
		var gatewayErr *service.GatewayError
		assert.ErrorAs(t, err, &gatewayErr)
		assert.Contains(t, gatewayErr.Error(), "connection refused")
	})
}

func TestPaymentService_VerifyPayment(t *testing.T) {
	ctx := context.Background()
	orderID := "order_abc"
	paymentID := "pay_xyz"
	goodSignature := gateway.Signature(orderID, paymentID, testKeySecret)

	newPending := func() *domain.Payment {
		return &domain.Payment{
			ID:              42,
			BookingID:       7,
			AmountPaidCents: 1_100_000,
			PaymentMethod:   domain.PaymentMethodUnknown,
			Status:          domain.PaymentStatusPending,
			RazorpayOrderID: orderID,
			PaymentDate:     time.Now().Add(-time.Minute),
		}
	}

	t.Run("Success Completes Payment And Booking", func(t *testing.T) {
		paymentRepo, bookingRepo, userRepo, _, emailSvc, svc := newPaymentFixture()

		pending := newPending()
		booking := &domain.Booking{ID: 7, UserID: 1, Status: domain.BookingStatusConfirmed}
		user := &domain.User{ID: 1, Email: "asha@example.com", Name: "Asha"}

		paymentRepo.On("GetByOrderID", ctx, orderID).Return(pending, nil)
		paymentRepo.On("Update", ctx, pending).Return(nil)
		bookingRepo.On("GetByID", ctx, int64(7)).Return(booking, nil)
		bookingRepo.On("Update", ctx, booking).Return(nil)
		userRepo.On("GetByID", ctx, int64(1)).Return(user, nil)
		emailSvc.On("SendPaymentReceipt", ctx, user, pending).Return(nil)

		verified, err := svc.VerifyPayment(ctx, service.VerifyPaymentInput{
			RazorpayOrderID:   orderID,
			RazorpayPaymentID: paymentID,
			RazorpaySignature: goodSignature,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, verified.Status)
		assert.Equal(t, "UPI", verified.PaymentMethod)
		assert.Equal(t, paymentID, verified.RazorpayPaymentID)
		assert.Equal(t, goodSignature, verified.RazorpaySignature)
		assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
	})

	t.Run("Signature Mismatch Mutates Nothing", func(t *testing.T) {
		paymentRepo, bookingRepo, _, _, _, svc := newPaymentFixture()

		verified, err := svc.VerifyPayment(ctx, service.VerifyPaymentInput{
			RazorpayOrderID:   orderID,
			RazorpayPaymentID: paymentID,
			RazorpaySignature: "deadbeef",
		})
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, service.ErrVerificationFailed)
		paymentRepo.AssertNotCalled(t, "GetByOrderID", mock.Anything, mock.Anything)
		paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Already Completed", func(t *testing.T) {
		paymentRepo, _, _, _, _, svc := newPaymentFixture()

		completed := newPending()
		completed.Status = domain.PaymentStatusCompleted
		paymentRepo.On("GetByOrderID", ctx, orderID).Return(completed, nil)

		verified, err := svc.VerifyPayment(ctx, service.VerifyPaymentInput{
			RazorpayOrderID:   orderID,
			RazorpayPaymentID: paymentID,
			RazorpaySignature: goodSignature,
		})
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, service.ErrAlreadyCompleted)
		paymentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Order", func(t *testing.T) {
		paymentRepo, _, _, _, _, svc := newPaymentFixture()

		paymentRepo.On("GetByOrderID", ctx, "order_missing").Return(nil, sql.ErrNoRows)

		verified, err := svc.VerifyPayment(ctx, service.VerifyPaymentInput{
			RazorpayOrderID:   "order_missing",
			RazorpayPaymentID: paymentID,
			RazorpaySignature: gateway.Signature("order_missing", paymentID, testKeySecret),
		})
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("Unexpected Failure Wrapped", func(t *testing.T) {
		paymentRepo, _, _, _, _, svc := newPaymentFixture()

		pending := newPending()
		paymentRepo.On("GetByOrderID", ctx, orderID).Return(pending, nil)
		paymentRepo.On("Update", ctx, pending).Return(errors.New("disk full"))

		verified, err := svc.VerifyPayment(ctx, service.VerifyPaymentInput{
			RazorpayOrderID:   orderID,
			RazorpayPaymentID: paymentID,
			RazorpaySignature: goodSignature,
		})
		assert.Nil(t, verified)
		var paymentErr *service.PaymentError
		assert.ErrorAs(t, err, &paymentErr)
		assert.Contains(t, paymentErr.Error(), "disk full")
	})

	t.Run("Missing Fields", func(t *testing.T) {
		_, _, _, _, _, svc := newPaymentFixture()

		verified, err := svc.VerifyPayment(ctx, service.VerifyPaymentInput{})
		assert.Nil(t, verified)
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})
}
