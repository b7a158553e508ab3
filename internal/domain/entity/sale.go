package entity

import "time"

// DateLayout formato de fechas de captura y nacimiento (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ServiceType tipo de servicio contratado.
type ServiceType string

const (
	ServiceResidential ServiceType = "Residencial"
	ServiceBusiness    ServiceType = "Negocio"
)

// ServiceTypes lista cerrada.
var ServiceTypes = []ServiceType{ServiceResidential, ServiceBusiness}

func (s ServiceType) Valid() bool {
	return s == ServiceResidential || s == ServiceBusiness
}

// PackageType tipo de paquete.
type PackageType string

const (
	PackageDoublePlay   PackageType = "Doble Play"
	PackageInternetOnly PackageType = "Solo Internet"
)

// PackageTypes lista cerrada.
var PackageTypes = []PackageType{PackageDoublePlay, PackageInternetOnly}

func (p PackageType) Valid() bool {
	return p == PackageDoublePlay || p == PackageInternetOnly
}

// CustomerType modalidad de contratación.
type CustomerType string

const (
	CustomerNewLine     CustomerType = "Linea Nueva"
	CustomerPortability CustomerType = "Portabilidad"
	CustomerWinback     CustomerType = "Winback"
	CustomerSingleLine  CustomerType = "Linea Sola"
)

// CustomerTypes lista cerrada.
var CustomerTypes = []CustomerType{CustomerNewLine, CustomerPortability, CustomerWinback, CustomerSingleLine}

func (c CustomerType) Valid() bool {
	for _, v := range CustomerTypes {
		if c == v {
			return true
		}
	}
	return false
}

// IdType identificación presentada por el cliente.
type IdType string

const (
	IdINE  IdType = "INE"
	IdCURP IdType = "CURP"
)

// IdTypes lista cerrada.
var IdTypes = []IdType{IdINE, IdCURP}

func (i IdType) Valid() bool {
	return i == IdINE || i == IdCURP
}

// SaleStatus estado de la venta. Cualquier transición está permitida.
type SaleStatus string

const (
	StatusPending      SaleStatus = "Pendiente"
	StatusCancelled    SaleStatus = "Cancelado"
	StatusPosted       SaleStatus = "Posteado"
	StatusInstallation SaleStatus = "Proceso de Instalación"
)

// SaleStatuses lista cerrada en orden de presentación.
var SaleStatuses = []SaleStatus{StatusPending, StatusCancelled, StatusPosted, StatusInstallation}

func (s SaleStatus) Valid() bool {
	for _, v := range SaleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Sale venta capturada por un asesor.
type Sale struct {
	ID              string
	FullName        string
	PhoneNumber     string
	CaptureDate     time.Time // solo fecha, UTC
	FolioSIAC       string
	ServiceType     ServiceType
	PackageType     PackageType
	SelectedPackage string // etiqueta exacta del catálogo
	CustomerType    CustomerType
	IdType          IdType
	Status          SaleStatus
	CreatedBy       string // username del usuario que capturó
	CreatedAt       time.Time
	Documents       SaleDocuments
}

// CaptureDay fecha de captura en formato YYYY-MM-DD.
func (s *Sale) CaptureDay() string {
	return s.CaptureDate.Format(DateLayout)
}

// Clone copia superficial; los adjuntos son inmutables y se comparten.
func (s *Sale) Clone() *Sale {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
