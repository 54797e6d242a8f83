package postgres

import (
	"context"
	"time"

	"skyfleet-backend/internal/domain"
	"skyfleet-backend/internal/repository"
)

type droneRepository struct {
	db DBTX
}

func NewDroneRepository(db DBTX) repository.DroneRepository {
	return &droneRepository{db: db}
}

const droneColumns = `id, model, brand, status, price_per_hour_cents, battery_life, location, image_url, guide_url, drone_price_cents, created_on, updated_on`

func (r *droneRepository) Create(ctx context.Context, d *domain.Drone) error {
	query := `INSERT INTO drones (model, brand, status, price_per_hour_cents, battery_life, location, image_url, guide_url, drone_price_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, d.Model, d.Brand, d.Status, d.PricePerHourCents, d.BatteryLife, d.Location, d.ImageURL, d.GuideURL, d.DronePriceCents, now, now).Scan(&d.ID)
}

func (r *droneRepository) GetByID(ctx context.Context, id int64) (*domain.Drone, error) {
	d := &domain.Drone{}
	query := `SELECT ` + droneColumns + ` FROM drones WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Model, &d.Brand, &d.Status, &d.PricePerHourCents, &d.BatteryLife, &d.Location, &d.ImageURL, &d.GuideURL, &d.DronePriceCents, &d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *droneRepository) ExistsByModel(ctx context.Context, model string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM drones WHERE model = $1)`, model).Scan(&exists)
	return exists, err
}

func (r *droneRepository) Update(ctx context.Context, d *domain.Drone) error {
	query := `UPDATE drones SET model=$1, brand=$2, status=$3, price_per_hour_cents=$4, battery_life=$5, location=$6, image_url=$7, guide_url=$8, drone_price_cents=$9, updated_on=$10 WHERE id=$11`
	res, err := r.db.ExecContext(ctx, query, d.Model, d.Brand, d.Status, d.PricePerHourCents, d.BatteryLife, d.Location, d.ImageURL, d.GuideURL, d.DronePriceCents, time.Now(), d.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *droneRepository) List(ctx context.Context) ([]domain.Drone, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+droneColumns+` FROM drones ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drones []domain.Drone
	for rows.Next() {
		var d domain.Drone
		if err := rows.Scan(&d.ID, &d.Model, &d.Brand, &d.Status, &d.PricePerHourCents, &d.BatteryLife, &d.Location, &d.ImageURL, &d.GuideURL, &d.DronePriceCents, &d.CreatedOn, &d.UpdatedOn); err != nil {
			return nil, err
		}
		drones = append(drones, d)
	}
	return drones, rows.Err()
}

func (r *droneRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drones WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}
