package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
	"github.com/redis/go-redis/v9"
)

// availableCarsKey is the Redis key holding the cached available-cars listing.
const availableCarsKey = "cars:available"

// AvailableCarsCacheRepository caches the available-cars listing in Redis.
type AvailableCarsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached listing
}

// NewAvailableCarsCacheRepository creates a new cache repository with the given TTL.
func NewAvailableCarsCacheRepository(client *redis.Client, expiration time.Duration) *AvailableCarsCacheRepository {
	return &AvailableCarsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached listing, or (nil, nil) on a cache miss.
func (r *AvailableCarsCacheRepository) Get(ctx context.Context) ([]models.CarDB, error) {
	val, err := r.client.Get(ctx, availableCarsKey).Result()

	logger.Log.Infow(
		"key", availableCarsKey,
		"hit", err == nil,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cars []models.CarDB
	if err := json.Unmarshal([]byte(val), &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// Set caches the listing with the configured expiration.
func (r *AvailableCarsCacheRepository) Set(ctx context.Context, cars []models.CarDB) error {
	data, err := json.Marshal(cars)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, availableCarsKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", availableCarsKey,
		"cars", len(cars),
		"error", err,
	)

	return err
}

// Invalidate drops the cached listing after an ownership mutation.
func (r *AvailableCarsCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, availableCarsKey).Err()

	logger.Log.Infow(
		"key", availableCarsKey,
		"invalidated", err == nil,
		"error", err,
	)

	return err
}
