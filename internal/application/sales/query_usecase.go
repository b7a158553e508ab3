package sales

import (
	"fmt"
	"strings"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
	"github.com/jhoicas/siac-ventas-api/pkg/textfold"
)

// QueryUseCase consultas de ventas limitadas por el rol del usuario.
// Administrador ve todas; cualquier otro rol solo las que capturó.
type QueryUseCase struct {
	repo repository.SaleRepository
}

// NewQueryUseCase construye el caso de uso con el puerto de persistencia.
func NewQueryUseCase(repo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{repo: repo}
}

// VisibleSales ventas que el usuario puede ver, la más reciente primero.
func (uc *QueryUseCase) VisibleSales(actor *entity.User) ([]*entity.Sale, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if actor.Role.SeesEverything() {
		return uc.repo.List()
	}
	return uc.repo.ListByCreator(actor.Username)
}

// AllSales todas las ventas sin filtro de rol (reportes internos del servicio).
func (uc *QueryUseCase) AllSales() ([]*entity.Sale, error) {
	return uc.repo.List()
}

// Search aplica el filtro sobre las ventas visibles. Filtro vacío = conjunto visible.
func (uc *QueryUseCase) Search(actor *entity.User, f dto.SaleFilter) ([]*entity.Sale, error) {
	visible, err := uc.VisibleSales(actor)
	if err != nil {
		return nil, err
	}
	if f.IsEmpty() {
		return visible, nil
	}
	out := make([]*entity.Sale, 0, len(visible))
	for _, s := range visible {
		if Matches(s, f) {
			out = append(out, s)
		}
	}
	return out, nil
}

// Matches evalúa el filtro completo sobre una venta.
func Matches(s *entity.Sale, f dto.SaleFilter) bool {
	if q := strings.TrimSpace(f.Q); q != "" {
		if !textfold.Contains(s.FolioSIAC, q) && !textfold.Contains(s.FullName, q) {
			return false
		}
	}
	if f.CaptureDate != "" && s.CaptureDay() != f.CaptureDate {
		return false
	}
	if f.ServiceType != "" && string(s.ServiceType) != f.ServiceType {
		return false
	}
	if f.PackageType != "" && string(s.PackageType) != f.PackageType {
		return false
	}
	if f.Status != "" && string(s.Status) != f.Status {
		return false
	}
	return true
}

// GetSale devuelve ErrNotFound tanto si no existe como si el usuario no puede verla.
func (uc *QueryUseCase) GetSale(actor *entity.User, id string) (*entity.Sale, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	s, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil || !canSee(actor, s) {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// UpdateStatus cambia solo el estado; el resto de los campos se conserva.
func (uc *QueryUseCase) UpdateStatus(actor *entity.User, id string, status string) (*entity.Sale, error) {
	st := entity.SaleStatus(status)
	if !st.Valid() {
		return nil, domain.FieldErrors{"status": "Selecciona un estado válido."}
	}
	s, err := uc.GetSale(actor, id)
	if err != nil {
		return nil, err
	}
	s.Status = st
	if err := uc.repo.Update(s); err != nil {
		return nil, fmt.Errorf("actualizar estado: %w", err)
	}
	return s, nil
}

// Document adjunto de una venta visible; ErrNotFound si no existe en esa posición.
func (uc *QueryUseCase) Document(actor *entity.User, id string, slot entity.DocumentSlot) (*entity.Attachment, *entity.Sale, error) {
	s, err := uc.GetSale(actor, id)
	if err != nil {
		return nil, nil, err
	}
	a := s.Documents.Get(slot)
	if a == nil {
		return nil, nil, domain.ErrNotFound
	}
	return a, s, nil
}

func canSee(actor *entity.User, s *entity.Sale) bool {
	return actor.Role.SeesEverything() || s.CreatedBy == actor.Username
}
