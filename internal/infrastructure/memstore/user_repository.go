package memstore

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// PasswordMatcher compara una contraseña con su hash.
type PasswordMatcher interface {
	Matches(hash, password string) bool
}

// UserRepo implementación del puerto UserRepository sobre go-memdb.
type UserRepo struct {
	store     *Store
	passwords PasswordMatcher
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(store *Store, passwords PasswordMatcher) *UserRepo {
	return &UserRepo{store: store, passwords: passwords}
}

// FindByCredentials nunca indica qué campo falló: cualquier fallo devuelve (nil, nil).
func (r *UserRepo) FindByCredentials(username, password string) (*entity.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, nil
	}
	u, err := r.FindByUsername(username)
	if err != nil || u == nil {
		return nil, err
	}
	if !r.passwords.Matches(u.PasswordHash, password) {
		return nil, nil
	}
	return u, nil
}

// FindByID obtiene un usuario por ID.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	if id == "" {
		return nil, nil
	}
	return r.first(indexID, id)
}

// FindByUsername sin distinguir mayúsculas.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	if username == "" {
		return nil, nil
	}
	return r.first(indexUsername, username)
}

func (r *UserRepo) first(index, value string) (*entity.User, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()
	raw, err := txn.First(tableUsers, index, value)
	if err != nil {
		return nil, fmt.Errorf("find user by %s: %w", index, err)
	}
	if raw == nil {
		return nil, nil
	}
	return raw.(*userRow).User.Clone(), nil
}

// List usuarios en orden de creación.
func (r *UserRepo) List() ([]*entity.User, error) {
	txn := r.store.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(tableUsers, indexSeq)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return collectUsers(it.Next), nil
}

// ListBySupervisor reportes directos del supervisor en orden de creación.
func (r *UserRepo) ListBySupervisor(supervisorID string) ([]*entity.User, error) {
	if supervisorID == "" {
		return []*entity.User{}, nil
	}
	txn := r.store.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(tableUsers, indexSupervisor, supervisorID)
	if err != nil {
		return nil, fmt.Errorf("list users by supervisor: %w", err)
	}
	var rows []*userRow
	for raw := it.Next(); raw != nil; raw = it.Next() {
		rows = append(rows, raw.(*userRow))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Seq < rows[j].Seq })
	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.User.Clone())
	}
	return users, nil
}

// Create inserta el usuario; username duplicado (sin distinguir mayúsculas) devuelve ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tableUsers, indexUsername, user.Username)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	if existing != nil {
		return domain.ErrDuplicate
	}
	if dup, _ := txn.First(tableUsers, indexID, user.ID); dup != nil {
		return domain.ErrDuplicate
	}
	row := &userRow{
		ID:           user.ID,
		Username:     user.Username,
		SupervisorID: user.SupervisorID,
		Seq:          r.store.nextSeq(),
		User:         user.Clone(),
	}
	if err := txn.Insert(tableUsers, row); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	txn.Commit()
	return nil
}

// Delete elimina el usuario. El administrador inicial está protegido.
func (r *UserRepo) Delete(id string) error {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableUsers, indexID, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if raw == nil {
		return domain.ErrNotFound
	}
	if raw.(*userRow).User.Bootstrap {
		return domain.ErrProtectedUser
	}
	if err := txn.Delete(tableUsers, raw); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	txn.Commit()
	return nil
}

// SetProfilePicture reemplaza la foto de perfil; nil la elimina.
func (r *UserRepo) SetProfilePicture(id string, picture *entity.Attachment) error {
	txn := r.store.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tableUsers, indexID, id)
	if err != nil {
		return fmt.Errorf("set profile picture: %w", err)
	}
	if raw == nil {
		return domain.ErrNotFound
	}
	old := raw.(*userRow)
	updated := *old
	updated.User = old.User.Clone()
	updated.User.ProfilePicture = picture
	if err := txn.Insert(tableUsers, &updated); err != nil {
		return fmt.Errorf("set profile picture: %w", err)
	}
	txn.Commit()
	return nil
}

func collectUsers(next func() interface{}) []*entity.User {
	users := []*entity.User{}
	for raw := next(); raw != nil; raw = next() {
		users = append(users, raw.(*userRow).User.Clone())
	}
	return users
}
