package scheduling

import (
	"fmt"
	"math"

	"freeflow/models"
)

// AggregateBookingStats folds a booking list into dashboard metrics in a
// single pass. Revenue counts every booking's price regardless of status;
// paid revenue only counts bookings whose payment settled, and everything
// else contributes its outstanding balance. Rates are percentages formatted
// to one decimal place, with "0" for an empty input.
func AggregateBookingStats(bookings []models.Booking) models.BookingStats {
	stats := models.BookingStats{
		Total:          len(bookings),
		NoShowRate:     "0",
		ConversionRate: "0",
	}

	durationSum := 0
	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusConfirmed:
			stats.Confirmed++
		case models.BookingStatusPending:
			stats.Pending++
		case models.BookingStatusCompleted:
			stats.Completed++
		case models.BookingStatusCancelled:
			stats.Cancelled++
		}

		stats.TotalRevenue += b.Price
		if b.PaymentStatus == models.PaymentStatusPaid {
			stats.PaidRevenue += b.Price
		} else {
			stats.PendingPayments += b.BalanceDue
		}
		durationSum += b.DurationMinutes
	}

	if stats.Total > 0 {
		stats.AvgDuration = int(math.Round(float64(durationSum) / float64(stats.Total)))
		stats.NoShowRatio = float64(stats.Cancelled) / float64(stats.Total) * 100
		stats.ConversionRatio = float64(stats.Completed) / float64(stats.Total) * 100
		stats.NoShowRate = fmt.Sprintf("%.1f", stats.NoShowRatio)
		stats.ConversionRate = fmt.Sprintf("%.1f", stats.ConversionRatio)
	}
	return stats
}
