package newsletter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"freeflow/utils"
)

const tokenKeyPrefix = "newsletter:confirm:"

// redisTokenStore keeps confirmation tokens in the token Redis DB with a TTL.
type redisTokenStore struct{}

// NewRedisTokenStore returns the Redis-backed TokenStore.
func NewRedisTokenStore() TokenStore {
	return &redisTokenStore{}
}

func (s *redisTokenStore) Save(ctx context.Context, token, email string, ttl time.Duration) error {
	client := utils.GetTokenCacheClient()
	if err := client.Set(ctx, tokenKeyPrefix+token, email, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store confirmation token: %w", err)
	}
	return nil
}

func (s *redisTokenStore) Redeem(ctx context.Context, token string) (string, error) {
	client := utils.GetTokenCacheClient()
	key := tokenKeyPrefix + token

	email, err := client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to look up confirmation token: %w", err)
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		return "", fmt.Errorf("failed to consume confirmation token: %w", err)
	}
	return email, nil
}
