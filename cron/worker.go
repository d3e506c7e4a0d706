// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freeflow/config"
	bookingRepo "freeflow/database/repository/booking"
	"freeflow/models"
	"freeflow/services/mailer"
	"freeflow/utils"
)

// InitReminderWorker starts the asynq worker and the due-reminder sweep in
// the background.
func InitReminderWorker(repo bookingRepo.BookingRepository, sender mailer.Sender, scheduler *TaskScheduler) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		queueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleReminderTask(repo, sender))

	go sweepDueReminders(repo, scheduler)

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempt), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("Reminder worker exhausted start attempts")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

func handleReminderTask(repo bookingRepo.BookingRepository, sender mailer.Sender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		booking, err := repo.GetByID(ctx, p.BookingID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// Booking deleted since the task was queued; nothing to do.
				return nil
			}
			return err
		}
		if booking.Status == models.BookingStatusCancelled {
			return nil
		}

		switch p.Kind {
		case models.ReminderKindReminder:
			if booking.ReminderSent {
				return nil
			}
			if err := sender.Send(booking.CustomerEmail, "Upcoming booking: "+booking.BookingNumber, reminderBody(booking)); err != nil {
				return err
			}
			return repo.SetLifecycleFlag(ctx, booking.ID, "reminder_sent")
		case models.ReminderKindFollowUp:
			if booking.FollowUpSent {
				return nil
			}
			if err := sender.Send(booking.CustomerEmail, "Thanks for your session: "+booking.BookingNumber, followUpBody(booking)); err != nil {
				return err
			}
			return repo.SetLifecycleFlag(ctx, booking.ID, "follow_up_sent")
		default:
			logger.Warn("Unknown reminder kind", zap.String("kind", p.Kind))
			return nil
		}
	}
}

// sweepDueReminders periodically enqueues reminders for confirmed bookings
// entering the lead window. It backstops bookings confirmed too late for an
// up-front scheduled task.
func sweepDueReminders(repo bookingRepo.BookingRepository, scheduler *TaskScheduler) {
	logger := utils.GetLogger()
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		due, err := repo.GetDueForReminder(ctx, time.Now().Add(lead))
		if err != nil {
			logger.Warn("Reminder sweep failed", zap.Error(err))
			cancel()
			continue
		}
		for _, b := range due {
			payload := models.ReminderPayload{BookingID: b.ID, Kind: models.ReminderKindReminder}
			if err := scheduler.ScheduleReminder(ctx, payload, time.Now()); err != nil {
				logger.Warn("Failed to enqueue swept reminder", zap.String("bookingId", b.ID), zap.Error(err))
			}
		}
		cancel()
	}
}

func reminderBody(b *models.Booking) string {
	return fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder for %s (%s) starting %s.\n",
		b.CustomerName, b.Title, b.BookingNumber, b.StartTime.Format(time.RFC1123),
	)
}

func followUpBody(b *models.Booking) string {
	return fmt.Sprintf(
		"Hi %s,\n\nThanks for attending %s (%s). We'd love to hear how it went.\n",
		b.CustomerName, b.Title, b.BookingNumber,
	)
}
