package domain

import (
	"fmt"
	"strings"
	"time"
)

type PenaltyReason string

const (
	PenaltyReasonLateReturn   PenaltyReason = "LATE_RETURN"
	PenaltyReasonDamage       PenaltyReason = "DAMAGE"
	PenaltyReasonCancellation PenaltyReason = "CANCELLATION"
)

func ParsePenaltyReason(s string) (PenaltyReason, error) {
	v := PenaltyReason(strings.ToUpper(strings.TrimSpace(s)))
	switch v {
	case PenaltyReasonLateReturn, PenaltyReasonDamage, PenaltyReasonCancellation:
		return v, nil
	default:
		return "", fmt.Errorf("invalid penalty reason: %s", s)
	}
}

type PenaltyStatus string

const (
	PenaltyStatusPending PenaltyStatus = "PENDING"
	PenaltyStatusPaid    PenaltyStatus = "PAID"
	PenaltyStatusWaived  PenaltyStatus = "WAIVED"
)

// Penalty is a charge applied to a booking for late return, damage, or
// cancellation. Never persisted with a non-positive amount.
type Penalty struct {
	ID          int64         `json:"id"`
	BookingID   int64         `json:"booking_id"`
	Reason      PenaltyReason `json:"penalty_reason"`
	AmountCents int64         `json:"penalty_amount_cents"`
	Status      PenaltyStatus `json:"penalty_status"`
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
}
