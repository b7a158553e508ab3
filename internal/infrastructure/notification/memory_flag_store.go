package notification

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
)

// FlagTTL vigencia de la bandera "resumen mostrado". Cubre el día completo en cualquier zona horaria.
const FlagTTL = 48 * time.Hour

var _ repository.DailyFlagStore = (*MemoryFlagStore)(nil)

// MemoryFlagStore banderas en un LRU con expiración, por instancia.
type MemoryFlagStore struct {
	cache *expirable.LRU[string, struct{}]
}

// NewMemoryFlagStore maxSize limita la cantidad de banderas vivas.
func NewMemoryFlagStore(maxSize int, ttl time.Duration) *MemoryFlagStore {
	if ttl <= 0 {
		ttl = FlagTTL
	}
	return &MemoryFlagStore{cache: expirable.NewLRU[string, struct{}](maxSize, nil, ttl)}
}

func (s *MemoryFlagStore) WasShown(_ context.Context, userID string, day time.Time) (bool, error) {
	_, ok := s.cache.Get(flagKey(userID, day))
	return ok, nil
}

func (s *MemoryFlagStore) MarkShown(_ context.Context, userID string, day time.Time) error {
	s.cache.Add(flagKey(userID, day), struct{}{})
	return nil
}

// flagKey siac:summary:{userID}:{YYYY-MM-DD}
func flagKey(userID string, day time.Time) string {
	return "siac:summary:" + userID + ":" + day.Format(entity.DateLayout)
}
