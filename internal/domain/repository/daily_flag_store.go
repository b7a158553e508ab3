package repository

import (
	"context"
	"time"
)

// DailyFlagStore recuerda si el resumen del día ya se mostró a un usuario.
// Vive fuera del store de ventas: reiniciar uno no afecta al otro.
type DailyFlagStore interface {
	WasShown(ctx context.Context, userID string, day time.Time) (bool, error)
	MarkShown(ctx context.Context, userID string, day time.Time) error
}
