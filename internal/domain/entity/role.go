package entity

// Role rol de un usuario del portal. El valor es el texto que se muestra y viaja en JSON.
type Role string

// Roles válidos para User.
const (
	RoleAdmin      Role = "Administrador"
	RoleTrainee    Role = "Persona en Capacitación"
	RoleAdvisor    Role = "Asesor"
	RoleSupervisor Role = "Supervisor"
)

// Roles lista cerrada en orden de presentación.
var Roles = []Role{RoleAdmin, RoleTrainee, RoleAdvisor, RoleSupervisor}

// Valid indica si el rol pertenece a la lista cerrada.
func (r Role) Valid() bool {
	for _, v := range Roles {
		if r == v {
			return true
		}
	}
	return false
}

// RequiresSupervisor los roles subordinados deben depender de un Supervisor.
func (r Role) RequiresSupervisor() bool {
	return r == RoleTrainee || r == RoleAdvisor
}

// SeesEverything solo el Administrador ve todas las ventas y usuarios.
func (r Role) SeesEverything() bool {
	return r == RoleAdmin
}

// ParseRole convierte el texto recibido en Role.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}
