package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "389", formatMoney("389"))
	assert.Equal(t, "1,499", formatMoney("1499"))
	assert.Equal(t, "1,000,000", formatMoney("1000000"))
}

func TestChecklist_SegunIdentificacionYCliente(t *testing.T) {
	curp := &entity.Sale{IdType: entity.IdCURP, CustomerType: entity.CustomerNewLine}
	assert.Len(t, checklist(curp), 3)

	ine := &entity.Sale{IdType: entity.IdINE, CustomerType: entity.CustomerPortability}
	items := checklist(ine)
	require.Len(t, items, 6)
	assert.Equal(t, "Anexo de Portabilidad 2", items[5].label)
}

func TestGenerateSaleReceipt(t *testing.T) {
	sale := &entity.Sale{
		ID:              "v1",
		FullName:        "María Pérez",
		PhoneNumber:     "5512345678",
		CaptureDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		FolioSIAC:       "987654",
		ServiceType:     entity.ServiceBusiness,
		PackageType:     entity.PackageDoublePlay,
		SelectedPackage: "Infinitum Negocio $1,499 - 750 Megas (2 líneas)",
		CustomerType:    entity.CustomerNewLine,
		IdType:          entity.IdINE,
		Status:          entity.StatusPending,
		CreatedBy:       "12345678",
	}
	raw, err := NewMarotoReceiptGenerator("").GenerateSaleReceipt(context.Background(), sale, decimal.NewFromInt(1499))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
