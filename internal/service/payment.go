package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/gateway"
	"skyfleet-backend/internal/logger"
	"skyfleet-backend/internal/metrics"
	"skyfleet-backend/internal/repository"
)

const orderCurrency = "INR"

// paymentMethodOnCompletion is recorded once verification succeeds. The
// gateway callback does not carry the instrument, so the checkout default
// is assumed.
const paymentMethodOnCompletion = "UPI"

type paymentService struct {
	uow         repository.UnitOfWork
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	gw          gateway.Gateway
	keySecret   string
	emailSvc    EmailService
}

func NewPaymentService(
	uow repository.UnitOfWork,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	gw gateway.Gateway,
	keySecret string,
	emailSvc EmailService,
) PaymentService {
	return &paymentService{
		uow:         uow,
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		gw:          gw,
		keySecret:   keySecret,
		emailSvc:    emailSvc,
	}
}

// CreateOrder opens a gateway order for the booking's total and records the
// pending payment attempt. The booking id doubles as the order receipt so
// the two systems can always be reconciled.
func (s *paymentService) CreateOrder(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, asNotFound(err, "booking")
	}

	receipt := strconv.FormatInt(booking.ID, 10)
	order, err := s.gw.CreateOrder(ctx, booking.TotalAmountCents, orderCurrency, receipt)
	if err != nil {
		return nil, &GatewayError{Err: err}
	}

	payment := &domain.Payment{
		BookingID:       booking.ID,
		AmountPaidCents: booking.TotalAmountCents,
		PaymentMethod:   domain.PaymentMethodUnknown,
		PaymentDate:     time.Now(),
		Status:          domain.PaymentStatusPending,
		RazorpayOrderID: order.ID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record pending payment: %w", err)
	}

	logger.Info("payment order created",
		"booking_id", booking.ID,
		"order_id", order.ID,
		"amount_cents", booking.TotalAmountCents)
	return payment, nil
}

// VerifyPayment checks the callback signature against the shared secret and,
// on a match, completes both the payment and its booking in one transaction.
// A payment that already reached COMPLETED is never re-completed.
func (s *paymentService) VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*domain.Payment, error) {
	if in.RazorpayOrderID == "" || in.RazorpayPaymentID == "" || in.RazorpaySignature == "" {
		return nil, fmt.Errorf("%w: order id, payment id and signature are required", ErrInvalidArgument)
	}

	if !gateway.VerifySignature(in.RazorpayOrderID, in.RazorpayPaymentID, s.keySecret, in.RazorpaySignature) {
		metrics.IncPaymentVerified("mismatch")
		logger.Warn("payment signature mismatch", "order_id", in.RazorpayOrderID)
		return nil, ErrVerificationFailed
	}

	var payment *domain.Payment
	err := s.uow.WithTx(ctx, func(tx *repository.Tx) error {
		p, err := tx.Payments.GetByOrderID(ctx, in.RazorpayOrderID)
		if err != nil {
			return asNotFound(err, "payment")
		}
		if p.Status == domain.PaymentStatusCompleted {
			return ErrAlreadyCompleted
		}

		p.RazorpayPaymentID = in.RazorpayPaymentID
		p.RazorpaySignature = in.RazorpaySignature
		p.Status = domain.PaymentStatusCompleted
		p.PaymentMethod = paymentMethodOnCompletion
		p.PaymentDate = time.Now()
		if err := tx.Payments.Update(ctx, p); err != nil {
			return fmt.Errorf("complete payment: %w", err)
		}

		booking, err := tx.Bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			return asNotFound(err, "booking")
		}
		booking.Status = domain.BookingStatusCompleted
		if err := tx.Bookings.Update(ctx, booking); err != nil {
			return fmt.Errorf("complete booking: %w", err)
		}

		payment = p
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyCompleted):
			metrics.IncPaymentVerified("duplicate")
			return nil, err
		case errors.Is(err, ErrNotFound):
			metrics.IncPaymentVerified("error")
			return nil, err
		default:
			metrics.IncPaymentVerified("error")
			return nil, &PaymentError{Err: err}
		}
	}

	metrics.IncPaymentVerified("success")
	logger.Info("payment verified",
		"payment_id", payment.ID,
		"booking_id", payment.BookingID,
		"order_id", payment.RazorpayOrderID)
	s.notifyReceipt(ctx, payment)
	return payment, nil
}

func (s *paymentService) notifyReceipt(ctx context.Context, payment *domain.Payment) {
	if s.emailSvc == nil {
		return
	}
	booking, err := s.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		logger.Warn("payment receipt email skipped", "payment_id", payment.ID, "error", err)
		return
	}
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		logger.Warn("payment receipt email skipped", "payment_id", payment.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendPaymentReceipt(ctx, user, payment); err != nil {
		logger.Warn("payment receipt email failed", "payment_id", payment.ID, "error", err)
	}
}

func (s *paymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "payment")
	}
	return p, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}
