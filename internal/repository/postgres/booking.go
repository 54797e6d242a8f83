package postgres

import (
	"context"
	"time"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
)

type bookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, user_id, drone_id, booking_date_time, delivery_date_time, start_time, end_time, total_amount_cents, status, deliver_status, created_on, updated_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (user_id, drone_id, booking_date_time, delivery_date_time, start_time, end_time, total_amount_cents, status, deliver_status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, b.UserID, b.DroneID, b.BookingDateTime, b.DeliveryDateTime, b.StartTime, b.EndTime, b.TotalAmountCents, b.Status, b.DeliverStatus, now, now).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.UserID, &b.DroneID, &b.BookingDateTime, &b.DeliveryDateTime, &b.StartTime, &b.EndTime, &b.TotalAmountCents, &b.Status, &b.DeliverStatus, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET delivery_date_time=$1, start_time=$2, end_time=$3, total_amount_cents=$4, status=$5, deliver_status=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, b.DeliveryDateTime, b.StartTime, b.EndTime, b.TotalAmountCents, b.Status, b.DeliverStatus, time.Now(), b.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_on DESC`)
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return r.queryBookings(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_on DESC`, userID)
}

// ListOverdueReturns finds confirmed bookings whose rental window has closed
// but whose drone has not come back yet.
func (r *bookingRepository) ListOverdueReturns(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE status = $1 AND end_time < $2 AND deliver_status NOT IN ($3, $4, $5)`
	return r.queryBookings(ctx, query, domain.BookingStatusConfirmed, time.Now(),
		domain.DeliveryStatusReturned, domain.DeliveryStatusFailed, domain.DeliveryStatusCancelled)
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.DroneID, &b.BookingDateTime, &b.DeliveryDateTime, &b.StartTime, &b.EndTime, &b.TotalAmountCents, &b.Status, &b.DeliverStatus, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
