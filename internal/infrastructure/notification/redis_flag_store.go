package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
)

var _ repository.DailyFlagStore = (*RedisFlagStore)(nil)

// RedisFlagStore banderas compartidas entre instancias del servicio.
type RedisFlagStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisFlagStore usa un cliente ya conectado.
func NewRedisFlagStore(client *redis.Client, ttl time.Duration) *RedisFlagStore {
	if ttl <= 0 {
		ttl = FlagTTL
	}
	return &RedisFlagStore{client: client, ttl: ttl}
}

func (s *RedisFlagStore) WasShown(ctx context.Context, userID string, day time.Time) (bool, error) {
	_, err := s.client.Get(ctx, flagKey(userID, day)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get flag: %w", err)
	}
	return true, nil
}

func (s *RedisFlagStore) MarkShown(ctx context.Context, userID string, day time.Time) error {
	if err := s.client.Set(ctx, flagKey(userID, day), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set flag: %w", err)
	}
	return nil
}
