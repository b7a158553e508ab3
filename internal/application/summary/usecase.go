package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
)

// SalesSource ventas visibles para un usuario y el total sin filtro de rol.
type SalesSource interface {
	VisibleSales(actor *entity.User) ([]*entity.Sale, error)
	AllSales() ([]*entity.Sale, error)
}

// Report conteo de un día.
type Report struct {
	Day      time.Time
	Total    int
	ByStatus map[entity.SaleStatus]int // todos los estados presentes, en cero si no hay ventas
	Revenue  decimal.Decimal
}

// SummaryUseCase resumen de fin de día y bandera "ya mostrado" por usuario y fecha.
type SummaryUseCase struct {
	sales   SalesSource
	catalog *catalog.Catalog
	flags   repository.DailyFlagStore
	now     func() time.Time
}

// NewSummaryUseCase construye el caso de uso. now nil usa time.Now.
func NewSummaryUseCase(sales SalesSource, c *catalog.Catalog, flags repository.DailyFlagStore, now func() time.Time) *SummaryUseCase {
	if now == nil {
		now = time.Now
	}
	return &SummaryUseCase{sales: sales, catalog: c, flags: flags, now: now}
}

// ParseDay YYYY-MM-DD; vacío = hoy.
func (uc *SummaryUseCase) ParseDay(s string) (time.Time, error) {
	if s == "" {
		n := uc.now()
		return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.FieldErrors{"date": "La fecha debe tener el formato AAAA-MM-DD."}
	}
	return t, nil
}

// Daily resumen de las ventas visibles capturadas ese día.
func (uc *SummaryUseCase) Daily(ctx context.Context, actor *entity.User, day time.Time) (*dto.DailySummaryResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	visible, err := uc.sales.VisibleSales(actor)
	if err != nil {
		return nil, err
	}
	rep := uc.build(visible, day)
	shown, err := uc.flags.WasShown(ctx, actor.ID, day)
	if err != nil {
		return nil, fmt.Errorf("consultar bandera de resumen: %w", err)
	}
	return toResponse(rep, shown), nil
}

// Acknowledge marca el resumen del día como mostrado para el usuario.
func (uc *SummaryUseCase) Acknowledge(ctx context.Context, actor *entity.User, day time.Time) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if err := uc.flags.MarkShown(ctx, actor.ID, day); err != nil {
		return fmt.Errorf("guardar bandera de resumen: %w", err)
	}
	return nil
}

// GlobalReport resumen de todas las ventas del día (job programado).
func (uc *SummaryUseCase) GlobalReport(day time.Time) (*Report, error) {
	all, err := uc.sales.AllSales()
	if err != nil {
		return nil, err
	}
	return uc.build(all, day), nil
}

// Today fecha actual sin hora.
func (uc *SummaryUseCase) Today() time.Time {
	d, _ := uc.ParseDay("")
	return d
}

func (uc *SummaryUseCase) build(list []*entity.Sale, day time.Time) *Report {
	key := day.Format(entity.DateLayout)
	rep := &Report{
		Day:      day,
		ByStatus: make(map[entity.SaleStatus]int, len(entity.SaleStatuses)),
		Revenue:  decimal.Zero,
	}
	for _, st := range entity.SaleStatuses {
		rep.ByStatus[st] = 0
	}
	for _, s := range list {
		if s.CaptureDay() != key {
			continue
		}
		rep.Total++
		rep.ByStatus[s.Status]++
		if s.Status != entity.StatusCancelled {
			rep.Revenue = rep.Revenue.Add(uc.catalog.PriceOf(s))
		}
	}
	return rep
}

func toResponse(rep *Report, shown bool) *dto.DailySummaryResponse {
	counts := make([]dto.StatusCount, 0, len(entity.SaleStatuses))
	for _, st := range entity.SaleStatuses {
		counts = append(counts, dto.StatusCount{Status: string(st), Count: rep.ByStatus[st]})
	}
	return &dto.DailySummaryResponse{
		Date:             rep.Day.Format(entity.DateLayout),
		Total:            rep.Total,
		ByStatus:         counts,
		EstimatedRevenue: rep.Revenue,
		AlreadyShown:     shown,
	}
}
