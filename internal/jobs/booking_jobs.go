package jobs

import (
	"context"

	"skyfleet-backend/internal/logger"
)

// SendReturnReminders emails renters whose rental window has ended but whose
// drone has not come back yet.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		if jr.emailSvc == nil {
			logger.Warn("Email service not configured, skipping return reminders")
			return
		}
		ctx := context.Background()

		overdue, err := jr.bookings.ListOverdueReturns(ctx)
		if err != nil {
			logger.Error("Failed to list overdue returns", "error", err)
			return
		}

		sent := 0
		for i := range overdue {
			booking := &overdue[i]
			user, err := jr.users.GetByID(ctx, booking.UserID)
			if err != nil {
				logger.Error("Failed to load user for return reminder",
					"booking_id", booking.ID, "user_id", booking.UserID, "error", err)
				continue
			}
			if err := jr.emailSvc.SendReturnReminder(ctx, user, booking); err != nil {
				logger.Error("Failed to send return reminder",
					"booking_id", booking.ID, "error", err)
				continue
			}
			sent++
			logger.Debug("Sent return reminder",
				"booking_id", booking.ID, "user_id", booking.UserID, "end_time", booking.EndTime)
		}

		logger.Info("Return reminders sent", "overdue", len(overdue), "sent", sent)
	})
}
