package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	domainsales "github.com/jhoicas/siac-ventas-api/internal/domain/sales"
)

// SeedUser usuario a precargar al arrancar. Supervisor es el username del supervisor.
type SeedUser struct {
	Username    string
	Password    string
	FullName    string
	Role        string
	DateOfBirth string
	Supervisor  string
}

// EnsureBootstrapAdmin crea el administrador inicial si no existe. Queda marcado
// como protegido y no puede eliminarse.
func (uc *UserUseCase) EnsureBootstrapAdmin(username, password, fullName string) (*entity.User, error) {
	existing, err := uc.repo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		FullName:     fullName,
		Bootstrap:    true,
		CreatedAt:    uc.now(),
	}
	if err := uc.repo.Create(admin); err != nil {
		return nil, fmt.Errorf("crear administrador inicial: %w", err)
	}
	return admin, nil
}

// ImportSeed crea los usuarios semilla en dos pasadas: primero quienes no dependen de
// un supervisor y después el resto, resolviendo el supervisor por username.
// Los usuarios que ya existen se omiten. Devuelve cuántos se crearon.
func (uc *UserUseCase) ImportSeed(users []SeedUser) (int, error) {
	created := 0
	pending := make([]SeedUser, 0, len(users))
	for _, su := range users {
		if entity.Role(su.Role).RequiresSupervisor() {
			pending = append(pending, su)
			continue
		}
		ok, err := uc.importOne(su, "")
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	for _, su := range pending {
		sup, err := uc.repo.FindByUsername(su.Supervisor)
		if err != nil {
			return created, err
		}
		if sup == nil || sup.Role != entity.RoleSupervisor {
			return created, fmt.Errorf("usuario semilla %q: supervisor %q no existe", su.Username, su.Supervisor)
		}
		ok, err := uc.importOne(su, sup.ID)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

func (uc *UserUseCase) importOne(su SeedUser, supervisorID string) (bool, error) {
	existing, err := uc.repo.FindByUsername(su.Username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	role := entity.Role(su.Role)
	if !role.Valid() {
		return false, fmt.Errorf("usuario semilla %q: rol inválido %q", su.Username, su.Role)
	}
	if strings.TrimSpace(su.Username) == "" || su.Password == "" {
		return false, fmt.Errorf("usuario semilla sin credenciales")
	}
	var birth *time.Time
	if su.DateOfBirth != "" {
		t, ok := domainsales.ParseDay(su.DateOfBirth)
		if !ok {
			return false, fmt.Errorf("usuario semilla %q: fecha de nacimiento inválida", su.Username)
		}
		birth = &t
	}
	hash, err := uc.hasher.Hash(su.Password)
	if err != nil {
		return false, err
	}
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(su.Username),
		PasswordHash: hash,
		Role:         role,
		FullName:     su.FullName,
		DateOfBirth:  birth,
		SupervisorID: supervisorID,
		CreatedAt:    uc.now(),
	}
	if err := uc.repo.Create(u); err != nil {
		return false, fmt.Errorf("usuario semilla %q: %w", su.Username, err)
	}
	return true, nil
}
