// File: cron/client.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"freeflow/config"
	"freeflow/models"
)

const TypeBookingReminder = "booking:reminder"

// TaskScheduler enqueues booking reminder tasks on the asynq queue.
type TaskScheduler struct {
	client *asynq.Client
}

// NewTaskScheduler constructs a scheduler backed by the queue Redis DB.
func NewTaskScheduler() *TaskScheduler {
	return &TaskScheduler{
		client: asynq.NewClient(queueRedisOpt()),
	}
}

// ScheduleReminder enqueues one reminder or follow-up task for processAt.
func (s *TaskScheduler) ScheduleReminder(ctx context.Context, payload models.ReminderPayload, processAt time.Time) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode reminder payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingReminder, encoded)
	_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(processAt), asynq.MaxRetry(3))
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", payload.BookingID, err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *TaskScheduler) Close() error {
	return s.client.Close()
}

func queueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}
