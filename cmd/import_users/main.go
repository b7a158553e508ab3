// import_users convierte la exportación heredada de usuarios (hoja de cálculo en
// ISO-8859-1, separada por ';') en el archivo YAML de usuarios semilla que carga la API.
//
// Uso: go run ./cmd/import_users [usuarios.csv] [ruta/seed_users.yaml]
// Por defecto lee usuarios.csv del directorio actual y escribe config/seed_users.yaml
// en la raíz del módulo. La API lo carga si SEED_USERS_PATH apunta a ese archivo.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/seed"
)

func main() {
	csvPath := "usuarios.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "config", "seed_users.yaml")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	in, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	users, err := seed.ParseLegacyCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Supervisores y administradores primero para que el archivo se lea en orden de carga
	sort.SliceStable(users, func(i, j int) bool {
		return !entity.Role(users[i].Role).RequiresSupervisor() && entity.Role(users[j].Role).RequiresSupervisor()
	})

	byRole := make(map[string]int)
	for _, u := range users {
		if !entity.Role(u.Role).Valid() {
			fmt.Fprintf(os.Stderr, "Usuario %q: rol desconocido %q\n", u.Username, u.Role)
			os.Exit(1)
		}
		byRole[u.Role]++
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := seed.Encode(out, &seed.File{Users: users}); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir YAML: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d usuarios\n", outPath, len(users))
	for _, r := range entity.Roles {
		if n := byRole[string(r)]; n > 0 {
			fmt.Printf("  %-24s %d\n", r, n)
		}
	}
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
