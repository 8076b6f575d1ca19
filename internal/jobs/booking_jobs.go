package jobs

import (
	"context"
	"time"

	"eventrental-backend/internal/logger"
)

// MarkOverdueBookings flips active bookings past their return date to
// overdue. The same sweep runs just-in-time inside the overdue list query;
// both paths share the repository's idempotent conditional update.
func (jr *JobRunner) MarkOverdueBookings() {
	jr.runWithRecovery("MarkOverdueBookings", func() {
		ctx := context.Background()

		count, err := jr.store.BookingRepository.MarkOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to mark overdue bookings", "error", err)
			return
		}
		logger.Info("Marked bookings as overdue", "count", count)
	})
}
