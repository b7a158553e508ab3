package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFlagStore_Expira(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryFlagStore(10, 20*time.Millisecond)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.MarkShown(ctx, "u1", day))
	assert.Eventually(t, func() bool {
		shown, _ := s.WasShown(ctx, "u1", day)
		return !shown
	}, time.Second, 10*time.Millisecond)
}

func TestFlagKey(t *testing.T) {
	day := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "siac:summary:u1:2025-03-10", flagKey("u1", day))
}
