package dto

import "time"

// SaleFilter criterios de búsqueda; todos opcionales y combinados con AND.
type SaleFilter struct {
	Q           string `query:"q"` // folio o nombre, sin distinguir mayúsculas ni acentos
	CaptureDate string `query:"capture_date"`
	ServiceType string `query:"service_type"`
	PackageType string `query:"package_type"`
	Status      string `query:"status"`
}

// IsEmpty indica que no hay ningún criterio.
func (f SaleFilter) IsEmpty() bool {
	return f == SaleFilter{}
}

// DocumentResponse metadatos de un adjunto; el contenido se descarga aparte.
type DocumentResponse struct {
	Slot        string `json:"slot"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID              string             `json:"id"`
	FullName        string             `json:"full_name"`
	PhoneNumber     string             `json:"phone_number"`
	CaptureDate     string             `json:"capture_date"`
	FolioSIAC       string             `json:"folio_siac"`
	ServiceType     string             `json:"service_type"`
	PackageType     string             `json:"package_type"`
	SelectedPackage string             `json:"selected_package"`
	CustomerType    string             `json:"customer_type"`
	IdType          string             `json:"id_type"`
	Status          string             `json:"status"`
	StatusStyle     string             `json:"status_style"`
	CreatedBy       string             `json:"created_by"`
	CreatedAt       time.Time          `json:"created_at"`
	Documents       []DocumentResponse `json:"documents"`
}

// SaleListResponse listado de ventas, la más reciente primero.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Total int            `json:"total"`
}

// CreateSaleResponse confirmación de captura.
type CreateSaleResponse struct {
	Message string       `json:"message"`
	Sale    SaleResponse `json:"sale"`
}

// UpdateStatusRequest cambio de estado de una venta.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
