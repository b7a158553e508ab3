package dto

import "github.com/shopspring/decimal"

// PackageResponse paquete del catálogo.
type PackageResponse struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
	Megas int             `json:"megas"`
}

// PackageGroupResponse paquetes de una combinación servicio × tipo de paquete.
type PackageGroupResponse struct {
	ServiceType string            `json:"service_type"`
	PackageType string            `json:"package_type"`
	Packages    []PackageResponse `json:"packages"`
	// Selected selección previa que sigue siendo válida para la combinación; vacía si se reinicia.
	Selected string `json:"selected,omitempty"`
}

// StatusResponse estado con su clase de estilo.
type StatusResponse struct {
	Value string `json:"value"`
	Style string `json:"style"`
}

// CatalogResponse tablas fijas que usa el formulario de captura.
type CatalogResponse struct {
	ServiceTypes  []string               `json:"service_types"`
	PackageTypes  []string               `json:"package_types"`
	CustomerTypes []string               `json:"customer_types"`
	IdTypes       []string               `json:"id_types"`
	Roles         []string               `json:"roles"`
	Statuses      []StatusResponse       `json:"statuses"`
	Packages      []PackageGroupResponse `json:"packages"`
}
