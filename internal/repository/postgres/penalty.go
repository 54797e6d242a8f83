package postgres

import (
	"context"
	"time"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
)

type penaltyRepository struct {
	db DBTX
}

func NewPenaltyRepository(db DBTX) repository.PenaltyRepository {
	return &penaltyRepository{db: db}
}

const penaltyColumns = `id, booking_id, penalty_reason, penalty_amount_cents, penalty_status, created_on, updated_on`

func (r *penaltyRepository) Create(ctx context.Context, p *domain.Penalty) error {
	query := `INSERT INTO penalties (booking_id, penalty_reason, penalty_amount_cents, penalty_status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, p.BookingID, p.Reason, p.AmountCents, p.Status, now, now).Scan(&p.ID)
}

func (r *penaltyRepository) GetByID(ctx context.Context, id int64) (*domain.Penalty, error) {
	p := &domain.Penalty{}
	query := `SELECT ` + penaltyColumns + ` FROM penalties WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.BookingID, &p.Reason, &p.AmountCents, &p.Status, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *penaltyRepository) Update(ctx context.Context, p *domain.Penalty) error {
	query := `UPDATE penalties SET penalty_reason = $1, penalty_amount_cents = $2, penalty_status = $3, updated_on = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, p.Reason, p.AmountCents, p.Status, time.Now(), p.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *penaltyRepository) List(ctx context.Context) ([]domain.Penalty, error) {
	return r.queryPenalties(ctx, `SELECT `+penaltyColumns+` FROM penalties ORDER BY created_on DESC`)
}

func (r *penaltyRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Penalty, error) {
	return r.queryPenalties(ctx, `SELECT `+penaltyColumns+` FROM penalties WHERE booking_id = $1 ORDER BY created_on DESC`, bookingID)
}

func (r *penaltyRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM penalties WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *penaltyRepository) DeleteByBooking(ctx context.Context, bookingID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM penalties WHERE booking_id = $1`, bookingID)
	return err
}

func (r *penaltyRepository) queryPenalties(ctx context.Context, query string, args ...interface{}) ([]domain.Penalty, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var penalties []domain.Penalty
	for rows.Next() {
		var p domain.Penalty
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Reason, &p.AmountCents, &p.Status, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		penalties = append(penalties, p)
	}
	return penalties, rows.Err()
}
