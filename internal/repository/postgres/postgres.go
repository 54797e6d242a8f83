package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"skyfleet-backend/internal/repository"

	_ "github.com/lib/pq"
)

// DBTX is the querier shared by *sql.DB and *sql.Tx, letting every
// repository run either standalone or inside a unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.DroneRepository
	repository.BookingRepository
	repository.PaymentRepository
	repository.PenaltyRepository
	repository.UndertakingRepository
	repository.RatingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		DroneRepository:       NewDroneRepository(db),
		BookingRepository:     NewBookingRepository(db),
		PaymentRepository:     NewPaymentRepository(db),
		PenaltyRepository:     NewPenaltyRepository(db),
		UndertakingRepository: NewUndertakingRepository(db),
		RatingRepository:      NewRatingRepository(db),
	}
}

// WithTx implements repository.UnitOfWork: all repository calls made through
// the provided Tx ride one database transaction, committed only when fn
// returns nil.
func (s *Store) WithTx(ctx context.Context, fn func(tx *repository.Tx) error) error {
	dbtx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer dbtx.Rollback()

	scoped := &repository.Tx{
		Users:        NewUserRepository(dbtx),
		Drones:       NewDroneRepository(dbtx),
		Bookings:     NewBookingRepository(dbtx),
		Payments:     NewPaymentRepository(dbtx),
		Penalties:    NewPenaltyRepository(dbtx),
		Undertakings: NewUndertakingRepository(dbtx),
		Ratings:      NewRatingRepository(dbtx),
	}
	if err := fn(scoped); err != nil {
		return err
	}
	return dbtx.Commit()
}
