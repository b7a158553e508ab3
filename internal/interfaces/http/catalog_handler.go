package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
)

// CatalogHandler expone las tablas fijas del formulario de captura.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// Get godoc
// @Summary      Catálogo completo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	out := dto.CatalogResponse{
		ServiceTypes:  stringsOf(entity.ServiceTypes),
		PackageTypes:  stringsOf(entity.PackageTypes),
		CustomerTypes: stringsOf(entity.CustomerTypes),
		IdTypes:       stringsOf(entity.IdTypes),
		Roles:         stringsOf(entity.Roles),
	}
	for _, st := range entity.SaleStatuses {
		out.Statuses = append(out.Statuses, dto.StatusResponse{Value: string(st), Style: h.catalog.StatusStyle(st)})
	}
	for _, svc := range entity.ServiceTypes {
		for _, pt := range entity.PackageTypes {
			out.Packages = append(out.Packages, dto.PackageGroupResponse{
				ServiceType: string(svc),
				PackageType: string(pt),
				Packages:    h.packages(svc, pt),
			})
		}
	}
	return c.JSON(out)
}

// Packages paquetes de una combinación servicio × tipo de paquete. Con selected
// devuelve también la selección conciliada: se conserva solo si pertenece a la combinación.
// GET /api/catalog/packages?service_type=&package_type=&selected=
func (h *CatalogHandler) Packages(c *fiber.Ctx) error {
	svc := entity.ServiceType(c.Query("service_type"))
	pt := entity.PackageType(c.Query("package_type"))
	if !svc.Valid() || !pt.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "service_type y package_type son requeridos"})
	}
	return c.JSON(dto.PackageGroupResponse{
		ServiceType: string(svc),
		PackageType: string(pt),
		Packages:    h.packages(svc, pt),
		Selected:    h.catalog.Reconcile(svc, pt, c.Query("selected")),
	})
}

func (h *CatalogHandler) packages(svc entity.ServiceType, pt entity.PackageType) []dto.PackageResponse {
	pkgs := h.catalog.Packages(svc, pt)
	out := make([]dto.PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, dto.PackageResponse{Label: p.Label, Price: p.Price, Megas: p.Megas})
	}
	return out
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
