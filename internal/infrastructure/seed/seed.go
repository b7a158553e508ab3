// Package seed lee y escribe el archivo YAML de usuarios iniciales y convierte
// el CSV heredado (Latin-1, separado por ";") a ese formato.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// User usuario semilla. Supervisor es el username del supervisor, no su ID,
// porque los IDs se generan al cargar.
type User struct {
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	FullName    string `yaml:"full_name"`
	Role        string `yaml:"role"`
	DateOfBirth string `yaml:"date_of_birth,omitempty"`
	Supervisor  string `yaml:"supervisor,omitempty"`
}

// File contenido del archivo semilla.
type File struct {
	Users []User `yaml:"users"`
}

// Load lee el archivo YAML. path vacío devuelve un archivo sin usuarios.
func Load(path string) (*File, error) {
	if path == "" {
		return &File{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: abrir %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodifica el YAML.
func Decode(r io.Reader) (*File, error) {
	var out File
	if err := yaml.NewDecoder(r).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("seed: yaml inválido: %w", err)
	}
	return &out, nil
}

// Encode escribe el YAML con indentación de 2 espacios.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("seed: escribir yaml: %w", err)
	}
	return enc.Close()
}

// legacyColumns usuario;contraseña;nombre;rol;fecha_nacimiento;supervisor
const legacyColumns = 6

// ParseLegacyCSV lee la exportación heredada en ISO-8859-1. La primera fila es encabezado.
// Las líneas vacías se ignoran; filas con menos columnas producen error con su número de línea.
func ParseLegacyCSV(r io.Reader) ([]User, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var users []User
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(rec) < legacyColumns {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("seed: línea %d: se esperaban %d columnas, hay %d", line, legacyColumns, len(rec))
		}
		users = append(users, User{
			Username:    strings.TrimSpace(rec[0]),
			Password:    rec[1],
			FullName:    strings.TrimSpace(rec[2]),
			Role:        strings.TrimSpace(rec[3]),
			DateOfBirth: strings.TrimSpace(rec[4]),
			Supervisor:  strings.TrimSpace(rec[5]),
		})
	}
	return users, nil
}
