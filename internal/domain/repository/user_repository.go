package repository

import "github.com/jhoicas/siac-ventas-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Find* devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	// FindByCredentials username sin distinguir mayúsculas y contraseña exacta.
	// Cualquier fallo de coincidencia devuelve (nil, nil).
	FindByCredentials(username, password string) (*entity.User, error)
	FindByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	// List todos los usuarios en orden de creación.
	List() ([]*entity.User, error)
	ListBySupervisor(supervisorID string) ([]*entity.User, error)
	// Create devuelve domain.ErrDuplicate si el username ya existe.
	Create(user *entity.User) error
	// Delete devuelve domain.ErrProtectedUser para el administrador inicial
	// y domain.ErrNotFound si no existe.
	Delete(id string) error
	SetProfilePicture(id string, picture *entity.Attachment) error
}
