package domain

import "time"

type DroneStatus string

const (
	DroneStatusAvailable   DroneStatus = "AVAILABLE"
	DroneStatusRented      DroneStatus = "RENTED"
	DroneStatusMaintenance DroneStatus = "MAINTENANCE"
)

// Drone is a rentable unit. Prices are kept in integer minor units (paise);
// PricePerHourCents drives rental billing, DronePriceCents drives deposit tiering.
type Drone struct {
	ID                int64       `json:"id"`
	Model             string      `json:"model"`
	Brand             string      `json:"brand"`
	Status            DroneStatus `json:"status"`
	PricePerHourCents int64       `json:"price_per_hour_cents"`
	BatteryLife       int32       `json:"battery_life"`
	Location          string      `json:"location"`
	ImageURL          string      `json:"image_url"`
	GuideURL          string      `json:"guide_url"`
	DronePriceCents   int64       `json:"drone_price_cents"`
	CreatedOn         time.Time   `json:"created_on"`
	UpdatedOn         time.Time   `json:"updated_on"`
}
