package cache

import (
	"context"
	"time"

	"github.com/shopredat-blip/Viralyn-website/internal/database"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

const (
	// ProductCacheTTL limite la durée de vie du catalogue mis en cache.
	ProductCacheTTL = 1 * time.Hour
	// InsightCacheTTL limite la durée de vie d'une analyse IA de produit.
	InsightCacheTTL = 24 * time.Hour
)

// SetCache stocke une valeur dans le cache
func SetCache(key string, value interface{}, duration time.Duration) error {
	return database.Redis.Set(ctx, key, value, duration).Err()
}

// GetCache récupère une valeur du cache
func GetCache(key string) (string, error) {
	return database.Redis.Get(ctx, key).Result()
}

// DeleteCache supprime une clé du cache
func DeleteCache(key string) error {
	return database.Redis.Del(ctx, key).Err()
}

// --- Rate Limiting Global ---

// IncrementRateLimit incrémente le compteur de rate limit
func IncrementRateLimit(key string, window time.Duration) (int64, error) {
	pipe := database.Redis.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// GetRateLimit récupère le compteur de rate limit
func GetRateLimit(key string) (int64, error) {
	val, err := database.Redis.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}
