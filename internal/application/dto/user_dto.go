package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
// Llega como multipart para poder adjuntar la foto de perfil.
type CreateUserRequest struct {
	Username     string `json:"username" form:"username"`
	Password     string `json:"password" form:"password"`
	FullName     string `json:"full_name" form:"full_name"`
	Role         string `json:"role" form:"role"`
	DateOfBirth  string `json:"date_of_birth" form:"date_of_birth"` // YYYY-MM-DD, opcional
	SupervisorID string `json:"supervisor_id" form:"supervisor_id"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	FullName          string    `json:"full_name"`
	Role              string    `json:"role"`
	DateOfBirth       string    `json:"date_of_birth,omitempty"`
	SupervisorID      string    `json:"supervisor_id,omitempty"`
	HasProfilePicture bool      `json:"has_profile_picture"`
	CreatedAt         time.Time `json:"created_at"`
}

// UserListResponse listado plano (solo Administrador).
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// TeamResponse vista de equipo: el supervisor propio (si existe) y los reportes directos.
type TeamResponse struct {
	Supervisor *UserResponse  `json:"supervisor,omitempty"`
	Members    []UserResponse `json:"members"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
