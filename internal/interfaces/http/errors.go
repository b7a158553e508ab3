package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/domain"
)

// writeError traduce errores de dominio a dto.ErrorResponse. notFound es el mensaje
// del 404 propio de cada recurso.
func writeError(c *fiber.Ctx, err error, notFound string) error {
	if fe, ok := domain.AsFieldErrors(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "revisa los campos marcados",
			Fields:  fe,
		})
	}
	switch {
	case errors.Is(err, domain.ErrNothingToExport):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOTHING_TO_EXPORT", Message: "No hay datos para exportar."})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFound})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "Usuario o contraseña incorrectos."})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "la sesión ya no es válida"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrProtectedUser):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROTECTED_USER", Message: "El administrador inicial no puede eliminarse."})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "No se puede eliminar: el usuario es el actual o tiene personal a su cargo."})
	case errors.Is(err, domain.ErrArchiveFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "ARCHIVE_FAILED", Message: "No se pudo generar el archivo ZIP."})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
