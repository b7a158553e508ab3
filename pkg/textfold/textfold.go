// Package textfold normaliza texto en español para búsquedas y nombres de archivo:
// ignora mayúsculas y diacríticos ("Instalación" == "instalacion").
package textfold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold devuelve s sin diacríticos y en minúsculas (case folding Unicode).
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, cases.Fold())
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Contains informa si needle aparece en haystack ignorando mayúsculas y acentos.
// Un needle vacío (o solo espacios) siempre coincide.
func Contains(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// Equal compara dos cadenas ignorando mayúsculas y acentos.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
