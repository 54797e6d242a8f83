package repository

import (
	"context"

	"skyfleet-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type DroneRepository interface {
	Create(ctx context.Context, drone *domain.Drone) error
	GetByID(ctx context.Context, id int64) (*domain.Drone, error)
	ExistsByModel(ctx context.Context, model string) (bool, error)
	Update(ctx context.Context, drone *domain.Drone) error
	List(ctx context.Context) ([]domain.Drone, error)
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListOverdueReturns(ctx context.Context) ([]domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	// GetByOrderID resolves a payment by its remote order id; the column
	// carries a unique index so at most one row can match.
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	List(ctx context.Context) ([]domain.Payment, error)
	MarkStalePendingFailed(ctx context.Context, olderThanHours int) (int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteByBooking(ctx context.Context, bookingID int64) error
}

type PenaltyRepository interface {
	Create(ctx context.Context, penalty *domain.Penalty) error
	GetByID(ctx context.Context, id int64) (*domain.Penalty, error)
	Update(ctx context.Context, penalty *domain.Penalty) error
	List(ctx context.Context) ([]domain.Penalty, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Penalty, error)
	Delete(ctx context.Context, id int64) error
	DeleteByBooking(ctx context.Context, bookingID int64) error
}

type UndertakingRepository interface {
	Create(ctx context.Context, u *domain.Undertaking) error
	GetByID(ctx context.Context, id int64) (*domain.Undertaking, error)
	// ListDistinctTemplates returns one template row per unique clause text,
	// keeping the lowest id of each group.
	ListDistinctTemplates(ctx context.Context) ([]domain.Undertaking, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Undertaking, error)
	Delete(ctx context.Context, id int64) error
	DeleteByBooking(ctx context.Context, bookingID int64) error
}

type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	GetByID(ctx context.Context, id int64) (*domain.Rating, error)
	List(ctx context.Context) ([]domain.Rating, error)
	ListByBooking(ctx context.Context, bookingID int64) ([]domain.Rating, error)
	ListByDrone(ctx context.Context, droneID int64) ([]domain.Rating, error)
	Delete(ctx context.Context, id int64) error
	DeleteByBooking(ctx context.Context, bookingID int64) error
}

// Tx bundles transaction-scoped repositories for a multi-step operation.
type Tx struct {
	Users        UserRepository
	Drones       DroneRepository
	Bookings     BookingRepository
	Payments     PaymentRepository
	Penalties    PenaltyRepository
	Undertakings UndertakingRepository
	Ratings      RatingRepository
}

// UnitOfWork runs fn inside a single database transaction. The transaction
// commits only if fn returns nil; any error rolls everything back.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(tx *Tx) error) error
}
