package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/application/usecase"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/export"
)

const userNotFound = "usuario no encontrado"

// UserHandler maneja las peticiones HTTP de usuarios y equipo (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario
// @Description  Administrador crea cualquier rol; Supervisor solo Persona en Capacitación o Asesor y queda como su supervisor.
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        username         formData  string  true   "clave de empleado (8 dígitos) o usuario de administrador"
// @Param        password         formData  string  true   "contraseña"
// @Param        full_name        formData  string  false  "nombre completo"
// @Param        role             formData  string  true   "rol"
// @Param        date_of_birth    formData  string  false  "AAAA-MM-DD"
// @Param        supervisor_id    formData  string  false  "supervisor (requerido para roles subordinados)"
// @Param        profile_picture  formData  file    false  "foto de perfil"
// @Success      201  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	picture, err := formFile(multipartForm(c), "profile_picture")
	if err != nil {
		return badBody(c)
	}
	user, err := h.uc.Create(GetActor(c), in, picture)
	if err != nil {
		return writeError(c, err, userNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Delete elimina un usuario.
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err, userNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List listado plano de usuarios (Administrador).
// GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c))
	if err != nil {
		return writeError(c, err, userNotFound)
	}
	return c.JSON(out)
}

// Team supervisor propio y reportes directos.
// GET /api/team
func (h *UserHandler) Team(c *fiber.Ctx) error {
	out, err := h.uc.Team(GetActor(c))
	if err != nil {
		return writeError(c, err, userNotFound)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar usuarios visibles a CSV
// @Tags         users
// @Produce      text/csv
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/export.csv [get]
func (h *UserHandler) ExportCSV(c *fiber.Ctx) error {
	data, name, err := h.uc.ExportCSV(GetActor(c))
	if err != nil {
		return writeError(c, err, userNotFound)
	}
	return sendFile(c, name, export.CSVContentType, data)
}

// SetProfilePicture reemplaza la foto de perfil (el propio usuario o un Administrador).
// PUT /api/users/:id/profile-picture
func (h *UserHandler) SetProfilePicture(c *fiber.Ctx) error {
	picture, err := formFile(multipartForm(c), "profile_picture")
	if err != nil {
		return badBody(c)
	}
	if err := h.uc.SetProfilePicture(GetActor(c), c.Params("id"), picture); err != nil {
		return writeError(c, err, userNotFound)
	}
	return c.JSON(dto.MessageResponse{Message: "Foto de perfil actualizada."})
}

// ProfilePicture descarga la foto de perfil.
// GET /api/users/:id/profile-picture
func (h *UserHandler) ProfilePicture(c *fiber.Ctx) error {
	pic, err := h.uc.ProfilePicture(GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err, "el usuario no tiene foto de perfil")
	}
	c.Set(fiber.HeaderContentType, pic.ContentType)
	return c.Send(pic.Data)
}
