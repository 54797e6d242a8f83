package pricing

import (
	"errors"
	"time"

	"skyfleet-backend/internal/domain"
)

// All amounts are in integer minor units (paise). Band boundaries and
// percentages stay exact under integer arithmetic; sub-paisa remainders
// truncate toward zero.

var ErrInvalidInterval = errors.New("end time must be after start time")

// Deposit tier boundaries, in minor units.
const (
	depositTierConsumerCents     = 1_000_000  // 10,000 rupees
	depositTierProfessionalCents = 10_000_000 // 100,000 rupees
	depositTierEnterpriseCents   = 40_000_000 // 400,000 rupees
)

// Penalty policy constants.
const (
	// Late fee is 1.5x the hourly rate, expressed as a ratio.
	lateFeeRateNum = 3
	lateFeeRateDen = 2

	// Fixed damage charge, independent of drone or duration.
	DamageFixedCents int64 = 30_000 // 300 rupees

	// Cancellation forfeits 20% of the booking total.
	cancellationFeePercent = 20
)

// billedHours rounds a duration up to whole hours. Minutes are truncated
// first, matching the billing granularity of the rate card.
func billedHours(d time.Duration) int64 {
	minutes := int64(d / time.Minute)
	return (minutes + 59) / 60
}

// RentalAmountCents computes the base rental charge for a booking interval:
// ceil(duration in minutes / 60) hours times the drone's hourly rate.
func RentalAmountCents(start, end time.Time, hourlyRateCents int64) (int64, error) {
	if !end.After(start) {
		return 0, ErrInvalidInterval
	}
	return billedHours(end.Sub(start)) * hourlyRateCents, nil
}

// SecurityDepositCents sizes an undertaking deposit from the drone's
// purchase price. Consumer drones (10k-100k) carry 10%, professional
// (100k-400k) 15%, enterprise (above 400k) 25%, anything cheaper 5%.
func SecurityDepositCents(dronePriceCents int64) int64 {
	switch {
	case dronePriceCents >= depositTierConsumerCents && dronePriceCents <= depositTierProfessionalCents:
		return dronePriceCents * 10 / 100
	case dronePriceCents > depositTierProfessionalCents && dronePriceCents <= depositTierEnterpriseCents:
		return dronePriceCents * 15 / 100
	case dronePriceCents > depositTierEnterpriseCents:
		return dronePriceCents * 25 / 100
	default:
		return dronePriceCents * 5 / 100
	}
}

// LateReturnCents computes the late-return charge at now. Zero when the
// booking is not yet overdue; otherwise delay hours (rounded up) times the
// hourly rate times 1.5.
func LateReturnCents(endTime, now time.Time, hourlyRateCents int64) int64 {
	if !now.After(endTime) {
		return 0
	}
	hours := billedHours(now.Sub(endTime))
	return hours * hourlyRateCents * lateFeeRateNum / lateFeeRateDen
}

// CancellationCents forfeits a fixed share of the booking total.
func CancellationCents(totalAmountCents int64) int64 {
	return totalAmountCents * cancellationFeePercent / 100
}

// PenaltyAmountCents dispatches on the penalty reason. Unknown reasons
// yield zero; the caller decides whether a zero amount is an error.
func PenaltyAmountCents(reason domain.PenaltyReason, booking *domain.Booking, drone *domain.Drone, now time.Time) int64 {
	switch reason {
	case domain.PenaltyReasonLateReturn:
		return LateReturnCents(booking.EndTime, now, drone.PricePerHourCents)
	case domain.PenaltyReasonDamage:
		return DamageFixedCents
	case domain.PenaltyReasonCancellation:
		return CancellationCents(booking.TotalAmountCents)
	default:
		return 0
	}
}

// Chargeable reports whether an amount survives whole-unit truncation.
// Sub-rupee penalties are not charged.
func Chargeable(amountCents int64) bool {
	return amountCents/100 > 0
}
