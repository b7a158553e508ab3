package sales

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
	domainsales "github.com/jhoicas/siac-ventas-api/internal/domain/sales"
)

var salesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "siac_sales_created_total",
	Help: "Ventas capturadas por tipo de servicio y tipo de cliente.",
}, []string{"service_type", "customer_type"})

// CaptureUseCase registra ventas nuevas.
type CaptureUseCase struct {
	repo      repository.SaleRepository
	validator *domainsales.Validator
}

// NewCaptureUseCase construye el caso de uso.
func NewCaptureUseCase(repo repository.SaleRepository, validator *domainsales.Validator) *CaptureUseCase {
	return &CaptureUseCase{repo: repo, validator: validator}
}

// CreateSale valida el borrador y, si es correcto, guarda la venta como Pendiente
// registrada por el usuario actual. Con errores de validación devuelve domain.FieldErrors
// y el store no se modifica.
func (uc *CaptureUseCase) CreateSale(actor *entity.User, draft domainsales.Draft) (*entity.Sale, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if fe := uc.validator.Validate(draft); len(fe) > 0 {
		return nil, fe
	}
	sale := uc.validator.Build(draft, uuid.New().String(), actor.Username)
	if err := uc.repo.Create(sale); err != nil {
		return nil, fmt.Errorf("guardar venta: %w", err)
	}
	salesCreatedTotal.WithLabelValues(string(sale.ServiceType), string(sale.CustomerType)).Inc()
	return sale, nil
}

// SuccessMessage confirmación mostrada al capturista.
func SuccessMessage(s *entity.Sale) string {
	return fmt.Sprintf("Folio SIAC %s registrado con éxito!", s.FolioSIAC)
}
