package postgres

import (
	"context"
	"time"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
)

type undertakingRepository struct {
	db DBTX
}

func NewUndertakingRepository(db DBTX) repository.UndertakingRepository {
	return &undertakingRepository{db: db}
}

const undertakingColumns = `id, booking_id, is_accepted, deposit_amount_cents, damage_clause_text, is_template, created_on, updated_on`

func (r *undertakingRepository) Create(ctx context.Context, u *domain.Undertaking) error {
	query := `INSERT INTO undertakings (booking_id, is_accepted, deposit_amount_cents, damage_clause_text, is_template, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, u.BookingID, u.IsAccepted, u.DepositAmountCents, u.DamageClauseText, u.IsTemplate, now, now).Scan(&u.ID)
}

func (r *undertakingRepository) GetByID(ctx context.Context, id int64) (*domain.Undertaking, error) {
	u := &domain.Undertaking{}
	query := `SELECT ` + undertakingColumns + ` FROM undertakings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.BookingID, &u.IsAccepted, &u.DepositAmountCents, &u.DamageClauseText, &u.IsTemplate, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListDistinctTemplates groups template rows by clause text and keeps the
// lowest-id representative of each group.
func (r *undertakingRepository) ListDistinctTemplates(ctx context.Context) ([]domain.Undertaking, error) {
	query := `SELECT ` + undertakingColumns + ` FROM undertakings u
	          WHERE u.is_template = TRUE AND u.id IN (
	              SELECT MIN(id) FROM undertakings WHERE is_template = TRUE GROUP BY damage_clause_text
	          ) ORDER BY u.id`
	return r.queryUndertakings(ctx, query)
}

func (r *undertakingRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Undertaking, error) {
	return r.queryUndertakings(ctx, `SELECT `+undertakingColumns+` FROM undertakings WHERE booking_id = $1 ORDER BY id`, bookingID)
}

func (r *undertakingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM undertakings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *undertakingRepository) DeleteByBooking(ctx context.Context, bookingID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM undertakings WHERE booking_id = $1`, bookingID)
	return err
}

func (r *undertakingRepository) queryUndertakings(ctx context.Context, query string, args ...interface{}) ([]domain.Undertaking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var undertakings []domain.Undertaking
	for rows.Next() {
		var u domain.Undertaking
		if err := rows.Scan(&u.ID, &u.BookingID, &u.IsAccepted, &u.DepositAmountCents, &u.DamageClauseText, &u.IsTemplate, &u.CreatedOn, &u.UpdatedOn); err != nil {
			return nil, err
		}
		undertakings = append(undertakings, u)
	}
	return undertakings, rows.Err()
}
