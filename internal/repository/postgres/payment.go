package postgres

import (
	"context"
	"fmt"
	"time"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
)

type paymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, booking_id, amount_paid_cents, payment_method, payment_date, payment_status, razorpay_order_id, razorpay_payment_id, razorpay_signature, created_on, updated_on`

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (booking_id, amount_paid_cents, payment_method, payment_date, payment_status, razorpay_order_id, razorpay_payment_id, razorpay_signature, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	if p.PaymentDate.IsZero() {
		p.PaymentDate = now
	}
	return r.db.QueryRowContext(ctx, query, p.BookingID, p.AmountPaidCents, p.PaymentMethod, p.PaymentDate, p.Status, p.RazorpayOrderID, p.RazorpayPaymentID, p.RazorpaySignature, now, now).Scan(&p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanPayment(r.db.QueryRowContext(ctx, query, id))
}

func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	// razorpay_order_id is unique-indexed; a scan returning a row is the
	// only row for this order.
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE razorpay_order_id = $1`
	return r.scanPayment(r.db.QueryRowContext(ctx, query, orderID))
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET payment_method=$1, payment_status=$2, razorpay_payment_id=$3, razorpay_signature=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, p.PaymentMethod, p.Status, p.RazorpayPaymentID, p.RazorpaySignature, time.Now(), p.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY created_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.AmountPaidCents, &p.PaymentMethod, &p.PaymentDate, &p.Status, &p.RazorpayOrderID, &p.RazorpayPaymentID, &p.RazorpaySignature, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// MarkStalePendingFailed fails PENDING payments that never saw a gateway
// callback within the given window. Returns the number of rows flipped.
func (r *paymentRepository) MarkStalePendingFailed(ctx context.Context, olderThanHours int) (int64, error) {
	query := `UPDATE payments SET payment_status=$1, updated_on=NOW() WHERE payment_status=$2 AND created_on < $3`
	cutoff := time.Now().Add(-time.Duration(olderThanHours) * time.Hour)
	res, err := r.db.ExecContext(ctx, query, domain.PaymentStatusFailed, domain.PaymentStatusPending, cutoff)
	if err != nil {
		return 0, fmt.Errorf("mark stale payments: %w", err)
	}
	return res.RowsAffected()
}

func (r *paymentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *paymentRepository) DeleteByBooking(ctx context.Context, bookingID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE booking_id = $1`, bookingID)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *paymentRepository) scanPayment(row rowScanner) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(&p.ID, &p.BookingID, &p.AmountPaidCents, &p.PaymentMethod, &p.PaymentDate, &p.Status, &p.RazorpayOrderID, &p.RazorpayPaymentID, &p.RazorpaySignature, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}
