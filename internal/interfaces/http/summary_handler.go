package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/application/summary"
)

// SummaryHandler resumen de fin de día.
type SummaryHandler struct {
	uc *summary.SummaryUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *summary.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Daily godoc
// @Summary      Resumen del día
// @Description  Conteo por estado e ingreso estimado de las ventas visibles capturadas ese día.
// @Tags         summary
// @Produce      json
// @Param        date  query  string  false  "AAAA-MM-DD (vacío = hoy)"
// @Success      200  {object}  dto.DailySummaryResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/summary/daily [get]
func (h *SummaryHandler) Daily(c *fiber.Ctx) error {
	day, err := h.uc.ParseDay(c.Query("date"))
	if err != nil {
		return writeError(c, err, "")
	}
	out, err := h.uc.Daily(c.UserContext(), GetActor(c), day)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// Acknowledge marca el resumen como mostrado para el usuario actual.
// POST /api/summary/daily/ack?date=
func (h *SummaryHandler) Acknowledge(c *fiber.Ctx) error {
	day, err := h.uc.ParseDay(c.Query("date"))
	if err != nil {
		return writeError(c, err, "")
	}
	if err := h.uc.Acknowledge(c.UserContext(), GetActor(c), day); err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(dto.MessageResponse{Message: "Resumen marcado como mostrado."})
}
