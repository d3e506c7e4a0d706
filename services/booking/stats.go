package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/services/scheduling"
	"freeflow/utils"
)

const (
	statsCacheKey = "booking:stats"
	statsCacheTTL = 30 * time.Second
)

// GetStats aggregates the dashboard metrics over a provider's bookings, or
// over all bookings when providerID is empty. A short Redis cache sits in
// front so a busy dashboard does not hammer the collection; without an
// initialized cache client it aggregates directly.
func (svc *DefaultBookingService) GetStats(ctx context.Context, providerID string) (*models.BookingStats, error) {
	key := statsKeyFor(providerID)
	cache := utils.CacheClient
	if cache != nil {
		if cached, err := cache.Get(ctx, key).Result(); err == nil {
			var stats models.BookingStats
			if jsonErr := json.Unmarshal([]byte(cached), &stats); jsonErr == nil {
				return &stats, nil
			}
		}
	}

	var bookings []models.Booking
	var err error
	if providerID == "" {
		bookings, err = svc.Repo.GetAll(ctx)
	} else {
		bookings, err = svc.Repo.GetByProvider(ctx, providerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	stats := scheduling.AggregateBookingStats(bookings)

	if cache != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := cache.Set(ctx, key, encoded, statsCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache booking stats", zap.Error(err))
			}
		}
	}
	return &stats, nil
}

func statsKeyFor(providerID string) string {
	if providerID == "" {
		return statsCacheKey
	}
	return statsCacheKey + ":" + providerID
}

// invalidateStatsCache drops both the global key and the provider's key, so a
// write through either view is visible on the next read.
func (svc *DefaultBookingService) invalidateStatsCache(ctx context.Context, providerID string) {
	if utils.CacheClient == nil {
		return
	}
	keys := []string{statsCacheKey}
	if providerID != "" {
		keys = append(keys, statsKeyFor(providerID))
	}
	if err := utils.CacheClient.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate stats cache", zap.Error(err))
	}
}
