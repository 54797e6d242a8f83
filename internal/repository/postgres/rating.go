package postgres

import (
	"context"
	"time"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
)

type ratingRepository struct {
	db DBTX
}

func NewRatingRepository(db DBTX) repository.RatingRepository {
	return &ratingRepository{db: db}
}

const ratingColumns = `id, booking_id, user_id, drone_id, rating_value, feedback_text, created_on, updated_on`

func (r *ratingRepository) Create(ctx context.Context, rt *domain.Rating) error {
	query := `INSERT INTO ratings (booking_id, user_id, drone_id, rating_value, feedback_text, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, rt.BookingID, rt.UserID, rt.DroneID, rt.RatingValue, rt.FeedbackText, now, now).Scan(&rt.ID)
}

func (r *ratingRepository) GetByID(ctx context.Context, id int64) (*domain.Rating, error) {
	rt := &domain.Rating{}
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.BookingID, &rt.UserID, &rt.DroneID, &rt.RatingValue, &rt.FeedbackText, &rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *ratingRepository) List(ctx context.Context) ([]domain.Rating, error) {
	return r.queryRatings(ctx, `SELECT `+ratingColumns+` FROM ratings ORDER BY created_on DESC`)
}

func (r *ratingRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Rating, error) {
	return r.queryRatings(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE booking_id = $1 ORDER BY created_on DESC`, bookingID)
}

func (r *ratingRepository) ListByDrone(ctx context.Context, droneID int64) ([]domain.Rating, error) {
	return r.queryRatings(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE drone_id = $1 ORDER BY created_on DESC`, droneID)
}

func (r *ratingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *ratingRepository) DeleteByBooking(ctx context.Context, bookingID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM ratings WHERE booking_id = $1`, bookingID)
	return err
}

func (r *ratingRepository) queryRatings(ctx context.Context, query string, args ...interface{}) ([]domain.Rating, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.ID, &rt.BookingID, &rt.UserID, &rt.DroneID, &rt.RatingValue, &rt.FeedbackText, &rt.CreatedOn, &rt.UpdatedOn); err != nil {
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	return ratings, rows.Err()
}
