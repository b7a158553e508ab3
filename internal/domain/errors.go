package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrProtectedUser      = errors.New("el administrador inicial no puede eliminarse")
	ErrNothingToExport    = errors.New("no hay datos para exportar")
	ErrArchiveFailed      = errors.New("no se pudo generar el archivo comprimido")
)

// FieldErrors errores de validación por campo (campo -> mensaje para mostrar en línea).
// Una validación fallida nunca modifica el store.
type FieldErrors map[string]string

// Add registra el primer mensaje para el campo; los siguientes se ignoran.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// Has informa si el campo tiene error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// Err devuelve nil si no hay errores, o el propio mapa como error.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validación fallida: " + strings.Join(fields, ", ")
}

// Is permite errors.Is(err, ErrInvalidInput) sobre FieldErrors.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}

// AsFieldErrors extrae los errores por campo, si err los contiene.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
