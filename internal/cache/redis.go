package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/viewtube/backend/internal/models"
)

const (
	videoListKey = "videos:all"
	videoListTTL = 30 * time.Second
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// CacheVideoList stores the public video listing for a short window
func (r *RedisClient) CacheVideoList(videos []models.Video) error {
	data, err := json.Marshal(videos)
	if err != nil {
		return err
	}

	return r.client.Set(r.ctx, videoListKey, data, videoListTTL).Err()
}

// GetCachedVideoList returns the cached listing, or (nil, nil) on a miss
func (r *RedisClient) GetCachedVideoList() ([]models.Video, error) {
	data, err := r.client.Get(r.ctx, videoListKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var videos []models.Video
	if err := json.Unmarshal([]byte(data), &videos); err != nil {
		return nil, err
	}

	return videos, nil
}

// InvalidateVideoList drops the cached listing after a video mutation
func (r *RedisClient) InvalidateVideoList() error {
	return r.client.Del(r.ctx, videoListKey).Err()
}
