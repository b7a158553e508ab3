package notification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisFlagStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisFlagStore(client, ttl), mr
}

// Ambas implementaciones deben comportarse igual ante el caso de uso de resumen.
func TestDailyFlagStore_Contrato(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	stores := map[string]func(t *testing.T) repository.DailyFlagStore{
		"memoria": func(t *testing.T) repository.DailyFlagStore { return NewMemoryFlagStore(100, time.Hour) },
		"redis": func(t *testing.T) repository.DailyFlagStore {
			s, _ := newRedisStore(t, time.Hour)
			return s
		},
	}
	for name, build := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := build(t)

			shown, err := s.WasShown(ctx, "u1", day)
			require.NoError(t, err)
			assert.False(t, shown)

			require.NoError(t, s.MarkShown(ctx, "u1", day))
			require.NoError(t, s.MarkShown(ctx, "u1", day))

			shown, err = s.WasShown(ctx, "u1", day)
			require.NoError(t, err)
			assert.True(t, shown)

			shown, err = s.WasShown(ctx, "u2", day)
			require.NoError(t, err)
			assert.False(t, shown)

			shown, err = s.WasShown(ctx, "u1", day.AddDate(0, 0, 1))
			require.NoError(t, err)
			assert.False(t, shown)
		})
	}
}

func TestRedisFlagStore_ClaveYExpiracion(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t, time.Hour)
	day := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	require.NoError(t, s.MarkShown(ctx, "u1", day))
	assert.True(t, mr.Exists("siac:summary:u1:2025-03-10"))
	assert.Equal(t, time.Hour, mr.TTL("siac:summary:u1:2025-03-10"))

	mr.FastForward(2 * time.Hour)
	shown, err := s.WasShown(ctx, "u1", day)
	require.NoError(t, err)
	assert.False(t, shown)
}

func TestRedisFlagStore_TTLPorDefecto(t *testing.T) {
	s, _ := newRedisStore(t, 0)
	assert.Equal(t, FlagTTL, s.ttl)
}

func TestRedisFlagStore_ServidorCaido(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t, time.Hour)
	mr.Close()

	_, err := s.WasShown(ctx, "u1", time.Now())
	assert.Error(t, err)
	assert.Error(t, s.MarkShown(ctx, "u1", time.Now()))
}
