package domain

import (
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ParseBookingStatus matches free-text status names case-insensitively
// against the defined enum values.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case BookingStatusConfirmed:
		return BookingStatusConfirmed, nil
	case BookingStatusCompleted:
		return BookingStatusCompleted, nil
	case BookingStatusCancelled:
		return BookingStatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
}

type DeliveryStatus string

const (
	DeliveryStatusPending        DeliveryStatus = "PENDING"
	DeliveryStatusShipped        DeliveryStatus = "SHIPPED"
	DeliveryStatusOutForDelivery DeliveryStatus = "OUT_FOR_DELIVERY"
	DeliveryStatusDelivered      DeliveryStatus = "DELIVERED"
	DeliveryStatusFailed         DeliveryStatus = "FAILED"
	DeliveryStatusReturned       DeliveryStatus = "RETURNED"
	DeliveryStatusCancelled      DeliveryStatus = "CANCELLED"
)

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	v := DeliveryStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch v {
	case DeliveryStatusPending, DeliveryStatusShipped, DeliveryStatusOutForDelivery,
		DeliveryStatusDelivered, DeliveryStatusFailed, DeliveryStatusReturned,
		DeliveryStatusCancelled:
		return v, nil
	default:
		return "", fmt.Errorf("invalid delivery status: %s", s)
	}
}

// Booking reserves one drone for one user over [StartTime, EndTime).
// Status and DeliverStatus advance independently. TotalAmountCents is the
// base rental charge plus all attached undertaking deposits.
type Booking struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"user_id"`
	DroneID          int64          `json:"drone_id"`
	BookingDateTime  time.Time      `json:"booking_date_time"`
	DeliveryDateTime time.Time      `json:"delivery_date_time"`
	StartTime        time.Time      `json:"start_time"`
	EndTime          time.Time      `json:"end_time"`
	TotalAmountCents int64          `json:"total_amount_cents"`
	Status           BookingStatus  `json:"status"`
	DeliverStatus    DeliveryStatus `json:"deliver_status"`
	CreatedOn        time.Time      `json:"created_on"`
	UpdatedOn        time.Time      `json:"updated_on"`
}
