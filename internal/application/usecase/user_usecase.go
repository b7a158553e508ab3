package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
	domainsales "github.com/jhoicas/siac-ventas-api/internal/domain/sales"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/export"
)

// Mensajes de validación de usuarios.
const (
	MsgEmptyCredentials = "El nombre de usuario y la contraseña no pueden estar vacíos."
	MsgDuplicateUser    = "El nombre de usuario ya existe."
	MsgEmployeeKey      = "El usuario debe ser la clave de empleado de 8 dígitos."
	MsgFullName         = "El nombre solo debe contener letras y espacios."
	MsgDateOfBirth      = "La fecha de nacimiento debe tener el formato AAAA-MM-DD."
	MsgRole             = "Selecciona un rol válido."
	MsgSupervisor       = "Selecciona un supervisor existente."
	MsgProfilePicture   = "La foto de perfil debe ser una imagen."
)

// PasswordHasher genera hashes de contraseña.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo    repository.UserRepository
	hasher  PasswordHasher
	picture entity.AttachmentPolicy
	now     func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
// La política de fotos de perfil acepta solo imágenes con el tamaño máximo indicado.
func NewUserUseCase(repo repository.UserRepository, hasher PasswordHasher, maxPictureBytes int64, now func() time.Time) *UserUseCase {
	if now == nil {
		now = time.Now
	}
	return &UserUseCase{
		repo:    repo,
		hasher:  hasher,
		picture: entity.AttachmentPolicy{MaxBytes: maxPictureBytes, AllowedTypes: []string{"image/"}},
		now:     now,
	}
}

// Actor recarga el usuario de la sesión; si fue eliminado pierde el acceso.
func (uc *UserUseCase) Actor(id string) (*entity.User, error) {
	u, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// ── Alta ─────────────────────────────────────────────────────────────────────

// Create crea un usuario. Administrador puede crear cualquier rol; Supervisor solo
// Persona en Capacitación o Asesor, y queda como su supervisor.
func (uc *UserUseCase) Create(actor *entity.User, in dto.CreateUserRequest, picture *entity.Attachment) (*dto.UserResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	role := entity.Role(strings.TrimSpace(in.Role))
	switch actor.Role {
	case entity.RoleAdmin:
	case entity.RoleSupervisor:
		if role.Valid() && !role.RequiresSupervisor() {
			return nil, domain.ErrForbidden
		}
		in.SupervisorID = actor.ID
	default:
		return nil, domain.ErrForbidden
	}

	user, fe, err := uc.newUser(in, picture)
	if err != nil {
		return nil, err
	}
	if len(fe) > 0 {
		return nil, fe
	}
	if err := uc.repo.Create(user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.FieldErrors{"username": MsgDuplicateUser}
		}
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	res := ToUserResponse(user)
	return &res, nil
}

// newUser valida la solicitud y construye la entidad con la contraseña hasheada.
func (uc *UserUseCase) newUser(in dto.CreateUserRequest, picture *entity.Attachment) (*entity.User, domain.FieldErrors, error) {
	fe := domain.FieldErrors{}
	username := strings.TrimSpace(in.Username)
	role := entity.Role(strings.TrimSpace(in.Role))

	if username == "" || strings.TrimSpace(in.Password) == "" {
		fe.Add("username", MsgEmptyCredentials)
	} else if existing, err := uc.repo.FindByUsername(username); err != nil {
		return nil, nil, err
	} else if existing != nil {
		fe.Add("username", MsgDuplicateUser)
	} else if role.Valid() && role != entity.RoleAdmin && !IsEmployeeKey(username) {
		fe.Add("username", MsgEmployeeKey)
	}

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		fullName = username
	} else if !domainsales.IsPersonName(fullName) {
		fe.Add("full_name", MsgFullName)
	}

	var birth *time.Time
	if d := strings.TrimSpace(in.DateOfBirth); d != "" {
		t, ok := domainsales.ParseDay(d)
		if !ok {
			fe.Add("date_of_birth", MsgDateOfBirth)
		} else {
			birth = &t
		}
	}

	if !role.Valid() {
		fe.Add("role", MsgRole)
	}

	supervisorID := ""
	if role.RequiresSupervisor() {
		sup, err := uc.repo.FindByID(strings.TrimSpace(in.SupervisorID))
		if err != nil {
			return nil, nil, err
		}
		if sup == nil || sup.Role != entity.RoleSupervisor {
			fe.Add("supervisor_id", MsgSupervisor)
		} else {
			supervisorID = sup.ID
		}
	}

	if msg := uc.picture.Check(picture); msg != "" {
		fe.Add("profile_picture", MsgProfilePicture)
	}

	if len(fe) > 0 {
		return nil, fe, nil
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, nil, err
	}
	return &entity.User{
		ID:             uuid.New().String(),
		Username:       username,
		PasswordHash:   hash,
		Role:           role,
		FullName:       fullName,
		DateOfBirth:    birth,
		SupervisorID:   supervisorID,
		ProfilePicture: picture,
		CreatedAt:      uc.now(),
	}, nil, nil
}

// IsEmployeeKey clave de empleado de 8 dígitos.
func IsEmployeeKey(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ── Baja ─────────────────────────────────────────────────────────────────────

// Delete elimina un usuario. Administrador elimina a cualquiera salvo el administrador
// inicial; Supervisor solo a sus reportes directos. Un supervisor con equipo no se elimina.
func (uc *UserUseCase) Delete(actor *entity.User, id string) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	target, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrNotFound
	}
	switch actor.Role {
	case entity.RoleAdmin:
	case entity.RoleSupervisor:
		if target.SupervisorID != actor.ID {
			return domain.ErrForbidden
		}
	default:
		return domain.ErrForbidden
	}
	if target.ID == actor.ID {
		return domain.ErrConflict
	}
	if target.Role == entity.RoleSupervisor {
		team, err := uc.repo.ListBySupervisor(target.ID)
		if err != nil {
			return err
		}
		if len(team) > 0 {
			return domain.ErrConflict
		}
	}
	return uc.repo.Delete(id)
}

// ── Consulta ─────────────────────────────────────────────────────────────────

// List listado plano de todos los usuarios (solo Administrador).
func (uc *UserUseCase) List(actor *entity.User) (*dto.UserListResponse, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if !actor.Role.SeesEverything() {
		return nil, domain.ErrForbidden
	}
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return &dto.UserListResponse{Users: toUserResponses(users)}, nil
}

// Team supervisor propio (si existe) y reportes directos del usuario.
func (uc *UserUseCase) Team(actor *entity.User) (*dto.TeamResponse, error) {
	sup, members, err := uc.team(actor)
	if err != nil {
		return nil, err
	}
	res := &dto.TeamResponse{Members: toUserResponses(members)}
	if sup != nil {
		r := ToUserResponse(sup)
		res.Supervisor = &r
	}
	return res, nil
}

func (uc *UserUseCase) team(actor *entity.User) (*entity.User, []*entity.User, error) {
	if actor == nil {
		return nil, nil, domain.ErrUnauthorized
	}
	var sup *entity.User
	if actor.HasSupervisor() {
		s, err := uc.repo.FindByID(actor.SupervisorID)
		if err != nil {
			return nil, nil, err
		}
		sup = s
	}
	members, err := uc.repo.ListBySupervisor(actor.ID)
	if err != nil {
		return nil, nil, err
	}
	return sup, members, nil
}

// VisibleUsers Administrador: todos; otros roles: supervisor propio y reportes directos.
func (uc *UserUseCase) VisibleUsers(actor *entity.User) ([]*entity.User, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if actor.Role.SeesEverything() {
		return uc.repo.List()
	}
	sup, members, err := uc.team(actor)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(members)+1)
	if sup != nil {
		out = append(out, sup)
	}
	return append(out, members...), nil
}

// ExportCSV reporte de los usuarios visibles. Sin usuarios devuelve ErrNothingToExport.
func (uc *UserUseCase) ExportCSV(actor *entity.User) (data []byte, fileName string, err error) {
	users, err := uc.VisibleUsers(actor)
	if err != nil {
		return nil, "", err
	}
	all, err := uc.repo.List()
	if err != nil {
		return nil, "", err
	}
	names := make(map[string]string, len(all))
	for _, u := range all {
		names[u.ID] = u.FullName
	}
	data, err = export.UsersCSV(users, func(id string) string { return names[id] })
	if err != nil {
		return nil, "", err
	}
	return data, export.UsersFileName(uc.now()), nil
}

// ── Foto de perfil ───────────────────────────────────────────────────────────

// SetProfilePicture solo el propio usuario o un Administrador.
func (uc *UserUseCase) SetProfilePicture(actor *entity.User, id string, picture *entity.Attachment) error {
	if actor == nil {
		return domain.ErrUnauthorized
	}
	if actor.ID != id && !actor.Role.SeesEverything() {
		return domain.ErrForbidden
	}
	if picture == nil {
		return domain.FieldErrors{"profile_picture": MsgProfilePicture}
	}
	if msg := uc.picture.Check(picture); msg != "" {
		return domain.FieldErrors{"profile_picture": msg}
	}
	return uc.repo.SetProfilePicture(id, picture)
}

// ProfilePicture foto de un usuario visible para el actor (o el propio).
func (uc *UserUseCase) ProfilePicture(actor *entity.User, id string) (*entity.Attachment, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	var target *entity.User
	if actor.ID == id {
		target = actor
	} else {
		visible, err := uc.VisibleUsers(actor)
		if err != nil {
			return nil, err
		}
		for _, u := range visible {
			if u.ID == id {
				target = u
				break
			}
		}
	}
	if target == nil || target.ProfilePicture == nil {
		return nil, domain.ErrNotFound
	}
	return target.ProfilePicture, nil
}

// ── Mapeo ────────────────────────────────────────────────────────────────────

// ToUserResponse convierte la entidad a DTO (sin password).
func ToUserResponse(u *entity.User) dto.UserResponse {
	res := dto.UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		FullName:          u.FullName,
		Role:              string(u.Role),
		SupervisorID:      u.SupervisorID,
		HasProfilePicture: u.ProfilePicture != nil,
		CreatedAt:         u.CreatedAt,
	}
	if u.DateOfBirth != nil {
		res.DateOfBirth = u.DateOfBirth.Format(entity.DateLayout)
	}
	return res
}

func toUserResponses(users []*entity.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
