package sales_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/domain/sales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

func newValidator(t *testing.T) *sales.Validator {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	policy := entity.AttachmentPolicy{MaxBytes: 1024, AllowedTypes: []string{"image/", "application/pdf"}}
	return sales.NewValidator(c, policy, func() time.Time { return fixedNow })
}

func validDraft() sales.Draft {
	return sales.Draft{
		FullName:        "María Pérez",
		PhoneNumber:     "5512345678",
		CaptureDate:     "2025-03-10",
		FolioSIAC:       "123456",
		ServiceType:     string(entity.ServiceResidential),
		PackageType:     string(entity.PackageDoublePlay),
		SelectedPackage: "Doble Play $499 - 150 Megas",
		CustomerType:    string(entity.CustomerNewLine),
		IdType:          string(entity.IdINE),
	}
}

func file(name, ct string, size int) *entity.Attachment {
	return &entity.Attachment{FileName: name, ContentType: ct, Data: make([]byte, size)}
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestValidate_BorradorValido(t *testing.T) {
	v := newValidator(t)
	assert.Empty(t, v.Validate(validDraft()))
}

func TestValidate_Telefono(t *testing.T) {
	v := newValidator(t)
	for _, phone := range []string{"551234567", "55123456789", "55-1234567", "", "５５１２３４５６７８"} {
		d := validDraft()
		d.PhoneNumber = phone
		fe := v.Validate(d)
		assert.Equal(t, sales.MsgPhoneNumber, fe[sales.FieldPhoneNumber], phone)
	}
}

func TestValidate_NombreConDigitos(t *testing.T) {
	v := newValidator(t)
	d := validDraft()
	d.FullName = "Juan 2"
	fe := v.Validate(d)
	assert.Equal(t, sales.MsgFullName, fe[sales.FieldFullName])

	d.FullName = "   "
	assert.True(t, v.Validate(d).Has(sales.FieldFullName))

	d.FullName = "José Ñúñez"
	assert.False(t, v.Validate(d).Has(sales.FieldFullName))
}

func TestValidate_FolioSoloNumeros(t *testing.T) {
	v := newValidator(t)
	for _, folio := range []string{"", "12A4", " 123", "12.3"} {
		d := validDraft()
		d.FolioSIAC = folio
		assert.Equal(t, sales.MsgFolioSIAC, v.Validate(d)[sales.FieldFolioSIAC], folio)
	}
}

func TestValidate_PaqueteFueraDeLaCombinacion(t *testing.T) {
	v := newValidator(t)
	d := validDraft()
	d.PackageType = string(entity.PackageInternetOnly)
	fe := v.Validate(d)
	assert.Equal(t, sales.MsgSelectedPackage, fe[sales.FieldSelectedPackage])
	assert.Len(t, fe, 1)
}

func TestValidate_EnumsDesconocidos(t *testing.T) {
	v := newValidator(t)
	d := validDraft()
	d.ServiceType = "Corporativo"
	d.CustomerType = "Prepago"
	d.IdType = "Pasaporte"
	fe := v.Validate(d)
	assert.True(t, fe.Has(sales.FieldServiceType))
	assert.True(t, fe.Has(sales.FieldCustomerType))
	assert.True(t, fe.Has(sales.FieldIdType))
	assert.True(t, fe.Has(sales.FieldSelectedPackage))
}

func TestValidate_FechaInvalida(t *testing.T) {
	v := newValidator(t)
	d := validDraft()
	d.CaptureDate = "10/03/2025"
	assert.True(t, v.Validate(d).Has(sales.FieldCaptureDate))
}

func TestValidate_Adjuntos(t *testing.T) {
	v := newValidator(t)
	d := validDraft()
	d.FolioFile = file("folio.png", "image/png", 10)
	d.IDFile1 = file("ine.exe", "application/x-msdownload", 10)
	d.ProofOfAddressFile = file("recibo.pdf", "application/pdf", 2048)
	fe := v.Validate(d)
	assert.False(t, fe.Has(sales.FieldFolioFile))
	assert.True(t, fe.Has(sales.FieldIDFile1))
	assert.True(t, strings.Contains(fe[sales.FieldProofOfAddress], "tamaño"))
}

func TestValidate_ErrorEsInvalidInput(t *testing.T) {
	v := newValidator(t)
	d := validDraft()
	d.PhoneNumber = "1"
	err := v.Validate(d).Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), sales.FieldPhoneNumber)
}

// ── Build ────────────────────────────────────────────────────────────────────

func TestBuild_FechaVaciaEsHoy(t *testing.T) {
	v := newValidator(t)
	d := validDraft()
	d.CaptureDate = ""
	s := v.Build(d, "id-1", "12345678")
	assert.Equal(t, "2025-03-14", s.CaptureDay())
	assert.Equal(t, entity.StatusPending, s.Status)
	assert.Equal(t, "12345678", s.CreatedBy)
}

func TestBuild_DescartaAdjuntosQueNoAplican(t *testing.T) {
	v := newValidator(t)
	d := validDraft()
	d.IdType = string(entity.IdCURP)
	d.IDFile1 = file("curp.pdf", "application/pdf", 5)
	d.IDFile2 = file("sobra.png", "image/png", 5)
	d.PortabilityFile1 = file("anexo.pdf", "application/pdf", 5)

	s := v.Build(d, "id-2", "12345678")
	assert.Equal(t, "curp.pdf", s.Documents.IDFile1().Name())
	assert.Nil(t, s.Documents.IDFile2())
	assert.Nil(t, s.Documents.Portability)
}

func TestBuild_PortabilidadConservaAnexos(t *testing.T) {
	v := newValidator(t)
	d := validDraft()
	d.CustomerType = string(entity.CustomerPortability)
	d.PortabilityFile1 = file("a1.pdf", "application/pdf", 5)
	d.PortabilityFile2 = file("a2.pdf", "application/pdf", 5)

	s := v.Build(d, "id-3", "12345678")
	require.NotNil(t, s.Documents.Portability)
	assert.Equal(t, "a2.pdf", s.Documents.PortabilityFile2().Name())
}
