package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Package paquete ofertado. Label es el identificador que se guarda en la venta;
// el precio se declara en la tabla, nunca se extrae de la etiqueta.
type Package struct {
	Label string          `yaml:"label" json:"label"`
	Price decimal.Decimal `yaml:"price" json:"price"`
	Megas int             `yaml:"megas" json:"megas"`
}

type packageGroup struct {
	PackageType entity.PackageType `yaml:"package_type"`
	Packages    []Package          `yaml:"packages"`
}

type serviceGroup struct {
	ServiceType  entity.ServiceType `yaml:"service_type"`
	PackageTypes []packageGroup     `yaml:"package_types"`
}

type document struct {
	Services     []serviceGroup               `yaml:"services"`
	StatusStyles map[entity.SaleStatus]string `yaml:"status_styles"`
}

type pairKey struct {
	service entity.ServiceType
	pkgType entity.PackageType
}

// Catalog tabla fija de paquetes y estilos de estado. Inmutable después de Load.
type Catalog struct {
	packages map[pairKey][]Package
	styles   map[entity.SaleStatus]string
}

// Default carga el catálogo embebido.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load carga el catálogo desde path; vacío usa el embebido.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: leer %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodifica el YAML y valida la tabla completa.
func Parse(raw []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("catalog: yaml inválido: %w", err)
	}
	c := &Catalog{
		packages: make(map[pairKey][]Package),
		styles:   doc.StatusStyles,
	}
	for _, sg := range doc.Services {
		if !sg.ServiceType.Valid() {
			return nil, fmt.Errorf("catalog: tipo de servicio desconocido %q", sg.ServiceType)
		}
		for _, pg := range sg.PackageTypes {
			if !pg.PackageType.Valid() {
				return nil, fmt.Errorf("catalog: tipo de paquete desconocido %q", pg.PackageType)
			}
			k := pairKey{sg.ServiceType, pg.PackageType}
			c.packages[k] = append(c.packages[k], pg.Packages...)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.ValidateStatusStyles(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate exige al menos un paquete por cada combinación servicio × paquete,
// etiquetas no vacías y únicas dentro de la combinación, y precios positivos.
func (c *Catalog) Validate() error {
	for _, st := range entity.ServiceTypes {
		for _, pt := range entity.PackageTypes {
			pkgs := c.packages[pairKey{st, pt}]
			if len(pkgs) == 0 {
				return fmt.Errorf("catalog: sin paquetes para %s / %s", st, pt)
			}
			seen := make(map[string]bool, len(pkgs))
			for _, p := range pkgs {
				if p.Label == "" {
					return fmt.Errorf("catalog: etiqueta vacía en %s / %s", st, pt)
				}
				if seen[p.Label] {
					return fmt.Errorf("catalog: etiqueta duplicada %q en %s / %s", p.Label, st, pt)
				}
				if !p.Price.IsPositive() {
					return fmt.Errorf("catalog: precio inválido para %q", p.Label)
				}
				seen[p.Label] = true
			}
		}
	}
	return nil
}

// ValidateStatusStyles exige un estilo para cada estado.
func (c *Catalog) ValidateStatusStyles() error {
	for _, s := range entity.SaleStatuses {
		if c.styles[s] == "" {
			return fmt.Errorf("catalog: falta estilo para el estado %q", s)
		}
	}
	return nil
}

// Packages paquetes de la combinación en orden de la tabla. Nil si la combinación no existe.
func (c *Catalog) Packages(service entity.ServiceType, pkgType entity.PackageType) []Package {
	pkgs := c.packages[pairKey{service, pkgType}]
	if pkgs == nil {
		return nil
	}
	out := make([]Package, len(pkgs))
	copy(out, pkgs)
	return out
}

// Lookup busca la etiqueta dentro de la combinación.
func (c *Catalog) Lookup(service entity.ServiceType, pkgType entity.PackageType, label string) (Package, bool) {
	for _, p := range c.packages[pairKey{service, pkgType}] {
		if p.Label == label {
			return p, true
		}
	}
	return Package{}, false
}

// Contains indica si la etiqueta pertenece a la combinación.
func (c *Catalog) Contains(service entity.ServiceType, pkgType entity.PackageType, label string) bool {
	_, ok := c.Lookup(service, pkgType, label)
	return ok
}

// Reconcile conserva la selección solo si sigue siendo válida para la combinación;
// cambiar el servicio o el tipo de paquete reinicia la selección.
func (c *Catalog) Reconcile(service entity.ServiceType, pkgType entity.PackageType, selected string) string {
	if c.Contains(service, pkgType, selected) {
		return selected
	}
	return ""
}

// PriceOf precio declarado del paquete de una venta; cero si ya no está en el catálogo.
func (c *Catalog) PriceOf(s *entity.Sale) decimal.Decimal {
	if p, ok := c.Lookup(s.ServiceType, s.PackageType, s.SelectedPackage); ok {
		return p.Price
	}
	return decimal.Zero
}

// StatusStyle clase de estilo del estado.
func (c *Catalog) StatusStyle(s entity.SaleStatus) string {
	return c.styles[s]
}

// StatusStyles copia de la tabla de estilos.
func (c *Catalog) StatusStyles() map[entity.SaleStatus]string {
	out := make(map[entity.SaleStatus]string, len(c.styles))
	for k, v := range c.styles {
		out[k] = v
	}
	return out
}
