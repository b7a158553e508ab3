package sales

import (
	"strings"
	"time"
	"unicode"

	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
)

// Nombres de campo usados como clave en FieldErrors (coinciden con el formulario multipart).
const (
	FieldFullName        = "full_name"
	FieldPhoneNumber     = "phone_number"
	FieldCaptureDate     = "capture_date"
	FieldFolioSIAC       = "folio_siac"
	FieldServiceType     = "service_type"
	FieldPackageType     = "package_type"
	FieldSelectedPackage = "selected_package"
	FieldCustomerType    = "customer_type"
	FieldIdType          = "id_type"
	FieldFolioFile       = "folio_siac_file"
	FieldIDFile1         = "id_file_1"
	FieldIDFile2         = "id_file_2"
	FieldProofOfAddress  = "proof_of_address_file"
	FieldPortability1    = "portability_file_1"
	FieldPortability2    = "portability_file_2"
)

// Mensajes mostrados en línea junto al campo.
const (
	MsgFullName        = "El nombre solo debe contener letras y espacios."
	MsgPhoneNumber     = "El número de teléfono debe tener exactamente 10 dígitos."
	MsgFolioSIAC       = "El Folio SIAC solo debe contener números."
	MsgCaptureDate     = "La fecha de captura debe tener el formato AAAA-MM-DD."
	MsgServiceType     = "Selecciona un tipo de servicio válido."
	MsgPackageType     = "Selecciona un tipo de paquete válido."
	MsgSelectedPackage = "Selecciona un paquete del catálogo."
	MsgCustomerType    = "Selecciona un tipo de cliente válido."
	MsgIdType          = "Selecciona un tipo de identificación válido."
)

// Draft datos de captura tal como llegan del formulario, antes de validar.
type Draft struct {
	FullName        string
	PhoneNumber     string
	CaptureDate     string // YYYY-MM-DD; vacío = hoy
	FolioSIAC       string
	ServiceType     string
	PackageType     string
	SelectedPackage string
	CustomerType    string
	IdType          string

	FolioFile          *entity.Attachment
	IDFile1            *entity.Attachment
	IDFile2            *entity.Attachment
	ProofOfAddressFile *entity.Attachment
	PortabilityFile1   *entity.Attachment
	PortabilityFile2   *entity.Attachment
}

// Validator valida borradores contra el catálogo y la política de adjuntos.
type Validator struct {
	catalog *catalog.Catalog
	policy  entity.AttachmentPolicy
	now     func() time.Time
}

// NewValidator construye el validador. now permite fijar "hoy" en tests; nil usa time.Now.
func NewValidator(c *catalog.Catalog, policy entity.AttachmentPolicy, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{catalog: c, policy: policy, now: now}
}

// Validate devuelve los errores por campo; vacío si el borrador es válido.
func (v *Validator) Validate(d Draft) domain.FieldErrors {
	fe := domain.FieldErrors{}

	if !IsPersonName(d.FullName) {
		fe.Add(FieldFullName, MsgFullName)
	}
	if !isDigits(d.PhoneNumber) || len(d.PhoneNumber) != 10 {
		fe.Add(FieldPhoneNumber, MsgPhoneNumber)
	}
	if !isDigits(d.FolioSIAC) {
		fe.Add(FieldFolioSIAC, MsgFolioSIAC)
	}
	if _, ok := v.captureDate(d.CaptureDate); !ok {
		fe.Add(FieldCaptureDate, MsgCaptureDate)
	}

	st := entity.ServiceType(d.ServiceType)
	if !st.Valid() {
		fe.Add(FieldServiceType, MsgServiceType)
	}
	pt := entity.PackageType(d.PackageType)
	if !pt.Valid() {
		fe.Add(FieldPackageType, MsgPackageType)
	}
	if !v.catalog.Contains(st, pt, d.SelectedPackage) {
		fe.Add(FieldSelectedPackage, MsgSelectedPackage)
	}
	ct := entity.CustomerType(d.CustomerType)
	if !ct.Valid() {
		fe.Add(FieldCustomerType, MsgCustomerType)
	}
	if !entity.IdType(d.IdType).Valid() {
		fe.Add(FieldIdType, MsgIdType)
	}

	files := []struct {
		field string
		att   *entity.Attachment
	}{
		{FieldFolioFile, d.FolioFile},
		{FieldIDFile1, d.IDFile1},
		{FieldIDFile2, d.IDFile2},
		{FieldProofOfAddress, d.ProofOfAddressFile},
		{FieldPortability1, d.PortabilityFile1},
		{FieldPortability2, d.PortabilityFile2},
	}
	for _, f := range files {
		if msg := v.policy.Check(f.att); msg != "" {
			fe.Add(f.field, msg)
		}
	}
	return fe
}

// Build crea la venta a partir de un borrador ya validado. Los adjuntos que no aplican
// (reverso para CURP, anexos fuera de Portabilidad) se descartan.
func (v *Validator) Build(d Draft, id, createdBy string) *entity.Sale {
	day, _ := v.captureDate(d.CaptureDate)
	idType := entity.IdType(d.IdType)
	ct := entity.CustomerType(d.CustomerType)
	return &entity.Sale{
		ID:              id,
		FullName:        d.FullName,
		PhoneNumber:     d.PhoneNumber,
		CaptureDate:     day,
		FolioSIAC:       d.FolioSIAC,
		ServiceType:     entity.ServiceType(d.ServiceType),
		PackageType:     entity.PackageType(d.PackageType),
		SelectedPackage: d.SelectedPackage,
		CustomerType:    ct,
		IdType:          idType,
		Status:          entity.StatusPending,
		CreatedBy:       createdBy,
		CreatedAt:       v.now(),
		Documents: entity.SaleDocuments{
			FolioCapture:   d.FolioFile,
			Identity:       entity.NewIdentityDocuments(idType, d.IDFile1, d.IDFile2),
			ProofOfAddress: d.ProofOfAddressFile,
			Portability:    entity.NewPortabilityAnnexes(ct, d.PortabilityFile1, d.PortabilityFile2),
		},
	}
}

func (v *Validator) captureDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		now := v.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return ParseDay(s)
}

// ParseDay interpreta YYYY-MM-DD como fecha UTC.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsPersonName letras (incluye acentos y ñ) y espacios, con al menos una letra.
func IsPersonName(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == ' ':
		default:
			return false
		}
	}
	return letters > 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
