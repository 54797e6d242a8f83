package jobs

import (
	"context"

	"skyfleet-backend/internal/logger"
)

// SweepStalePayments fails PENDING payments whose gateway order was never
// verified within the configured window. Abandoned checkouts otherwise pile
// up as pending rows forever.
func (jr *JobRunner) SweepStalePayments() {
	jr.runWithRecovery("SweepStalePayments", func() {
		ctx := context.Background()

		cutoffHours := jr.config.Booking.StalePaymentHours
		count, err := jr.payments.MarkStalePendingFailed(ctx, cutoffHours)
		if err != nil {
			logger.Error("Failed to sweep stale payments", "error", err)
			return
		}

		logger.Info("Marked stale payments as failed", "count", count, "older_than_hours", cutoffHours)
	})
}
