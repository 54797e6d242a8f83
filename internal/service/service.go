package service

import (
	"context"
	"time"

	"skyfleet-backend/internal/domain"
)

// CreateBookingInput carries everything needed to open a booking in one
// transaction: the rental window, the delivery address, and the renter's
// acceptance of the liability undertakings.
type CreateBookingInput struct {
	UserID              int64
	DroneID             int64
	StartTime           time.Time
	EndTime             time.Time
	DeliveryAddress     string
	UndertakingAccepted bool
}

// BookingResult is the confirmation returned after a booking is created.
type BookingResult struct {
	Booking      *domain.Booking
	Undertakings []domain.Undertaking
	DepositCents int64
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*BookingResult, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListBookingsByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	UpdateDeliveryStatus(ctx context.Context, id int64, status domain.DeliveryStatus) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// VerifyPaymentInput is the callback payload from the gateway checkout.
type VerifyPaymentInput struct {
	RazorpayOrderID   string
	RazorpayPaymentID string
	RazorpaySignature string
}

type PaymentService interface {
	CreateOrder(ctx context.Context, bookingID int64) (*domain.Payment, error)
	VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

type PenaltyService interface {
	RecordPenalty(ctx context.Context, bookingID int64, reason domain.PenaltyReason) (*domain.Penalty, error)
	GetPenalty(ctx context.Context, id int64) (*domain.Penalty, error)
	ListPenalties(ctx context.Context) ([]domain.Penalty, error)
	ListPenaltiesByBooking(ctx context.Context, bookingID int64) ([]domain.Penalty, error)
	UpdatePenaltyStatus(ctx context.Context, id int64, status domain.PenaltyStatus) (*domain.Penalty, error)
	DeletePenalty(ctx context.Context, id int64) error
}

type UndertakingService interface {
	CreateTemplate(ctx context.Context, clauseText string, depositCents int64) (*domain.Undertaking, error)
	GetUndertaking(ctx context.Context, id int64) (*domain.Undertaking, error)
	ListTemplates(ctx context.Context) ([]domain.Undertaking, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Undertaking, error)
	DeleteTemplate(ctx context.Context, id int64) error
}

// RegisterInput holds the fields collected at signup.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type DroneService interface {
	CreateDrone(ctx context.Context, d *domain.Drone) (*domain.Drone, error)
	GetDrone(ctx context.Context, id int64) (*domain.Drone, error)
	ListDrones(ctx context.Context) ([]domain.Drone, error)
	UpdateDrone(ctx context.Context, d *domain.Drone) error
	DeleteDrone(ctx context.Context, id int64) error
}

type RatingService interface {
	CreateRating(ctx context.Context, bookingID int64, value int32, feedback string) (*domain.Rating, error)
	ListRatings(ctx context.Context) ([]domain.Rating, error)
	ListRatingsByDrone(ctx context.Context, droneID int64) ([]domain.Rating, error)
	ListRatingsByBooking(ctx context.Context, bookingID int64) ([]domain.Rating, error)
	DeleteRating(ctx context.Context, id int64) error
}

// EmailService sends transactional notifications. Implementations must not
// block the calling request path on provider latency beyond the context
// deadline.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, user *domain.User, booking *domain.Booking) error
	SendPaymentReceipt(ctx context.Context, user *domain.User, payment *domain.Payment) error
	SendPenaltyNotice(ctx context.Context, user *domain.User, penalty *domain.Penalty) error
	SendReturnReminder(ctx context.Context, user *domain.User, booking *domain.Booking) error
}
