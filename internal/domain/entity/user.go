package entity

import "time"

// User usuario del portal. Username es único sin distinguir mayúsculas.
type User struct {
	ID             string
	Username       string
	PasswordHash   string // bcrypt, nunca la contraseña en claro
	Role           Role
	FullName       string
	DateOfBirth    *time.Time
	SupervisorID   string // vacío = sin supervisor
	ProfilePicture *Attachment
	Bootstrap      bool // administrador inicial, no se puede eliminar
	CreatedAt      time.Time
}

// HasSupervisor indica si el usuario depende de un supervisor.
func (u *User) HasSupervisor() bool {
	return u.SupervisorID != ""
}

// Clone copia superficial; los adjuntos se tratan como inmutables.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.DateOfBirth != nil {
		d := *u.DateOfBirth
		c.DateOfBirth = &d
	}
	return &c
}
