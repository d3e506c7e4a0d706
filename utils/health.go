package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Healthy reports whether every monitored dependency answered its last ping.
func (h HealthStatus) Healthy() bool {
	if !h.Mongo {
		return false
	}
	for _, ok := range h.Redis {
		if !ok {
			return false
		}
	}
	return true
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor checks the backing services once immediately and then
// every interval, keeping an in-memory snapshot for the /health endpoint.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client, interval time.Duration) {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	probe := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		status := HealthStatus{CheckedAt: time.Now()}
		for _, client := range redisClients {
			status.Redis = append(status.Redis, client.Ping(ctx).Err() == nil)
		}
		status.Mongo = mongoClient.Ping(ctx, nil) == nil

		healthMu.Lock()
		currentHealth = status
		healthMu.Unlock()

		if !status.Healthy() {
			GetLogger().Warn("health probe found unhealthy dependencies",
				zap.Bool("mongo", status.Mongo), zap.Bools("redis", status.Redis))
		}
	}

	go func() {
		probe()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			probe()
		}
	}()
}
