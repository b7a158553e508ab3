package export_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func att(name string, data string) *entity.Attachment {
	return &entity.Attachment{FileName: name, ContentType: "application/pdf", Data: []byte(data)}
}

func sampleSale() *entity.Sale {
	return &entity.Sale{
		ID:              "v1",
		FullName:        `Ana "La Jefa" López`,
		PhoneNumber:     "5512345678",
		CaptureDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		FolioSIAC:       "987654",
		ServiceType:     entity.ServiceResidential,
		PackageType:     entity.PackageDoublePlay,
		SelectedPackage: "Doble Play $389 - 80 Megas",
		CustomerType:    entity.CustomerPortability,
		IdType:          entity.IdINE,
		Status:          entity.StatusPending,
		CreatedBy:       "12345678",
		Documents: entity.SaleDocuments{
			FolioCapture: att("captura.png", "folio"),
			Identity:     entity.NewIdentityDocuments(entity.IdINE, att("frente.jpg", "f"), att("reverso", "r")),
			Portability:  entity.NewPortabilityAnnexes(entity.CustomerPortability, att("anexo1.pdf", "a1"), nil),
		},
	}
}

func readZip(t *testing.T, raw []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	out := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		out[f.Name] = string(b)
	}
	return out
}

// ── CSV ──────────────────────────────────────────────────────────────────────

func TestSalesCSV_EncabezadoYComillas(t *testing.T) {
	raw, err := export.SalesCSV([]*entity.Sale{sampleSale()})
	require.NoError(t, err)

	s := string(raw)
	require.True(t, strings.HasPrefix(s, "\uFEFF"))
	lines := strings.Split(strings.TrimPrefix(s, "\uFEFF"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Nombre Completo,Teléfono,Fecha de Captura,Folio SIAC,"))
	assert.True(t, strings.HasSuffix(lines[0], ",Archivo Portabilidad 1,Archivo Portabilidad 2"))
	assert.Contains(t, lines[1], `"Ana ""La Jefa"" López"`)
	assert.Contains(t, lines[1], `"2025-03-10"`)
	assert.True(t, strings.HasSuffix(lines[1], `"captura.png","frente.jpg","reverso","","anexo1.pdf",""`))
}

func TestSalesCSV_SinVentas(t *testing.T) {
	raw, err := export.SalesCSV(nil)
	assert.ErrorIs(t, err, domain.ErrNothingToExport)
	assert.Nil(t, raw)
}

func TestUsersCSV(t *testing.T) {
	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	users := []*entity.User{
		{ID: "s1", Username: "20000001", FullName: "Sara Supervisora", Role: entity.RoleSupervisor},
		{ID: "a1", Username: "20000002", FullName: "Alan Asesor", Role: entity.RoleAdvisor, SupervisorID: "s1", DateOfBirth: &birth},
	}
	raw, err := export.UsersCSV(users, func(id string) string {
		if id == "s1" {
			return "Sara Supervisora"
		}
		return ""
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimPrefix(string(raw), "\uFEFF"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Usuario,Nombre Completo,Rol,Fecha de Nacimiento,Supervisor", lines[0])
	assert.Equal(t, `"a1","20000002","Alan Asesor","Asesor","1990-05-01","Sara Supervisora"`, lines[2])

	_, err = export.UsersCSV(nil, nil)
	assert.ErrorIs(t, err, domain.ErrNothingToExport)
}

func TestFileNames(t *testing.T) {
	now := time.Date(2025, 12, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "reporte_ventas_2025-12-01.csv", export.SalesFileName(now))
	assert.Equal(t, "reporte_usuarios_2025-12-01.csv", export.UsersFileName(now))
}

// ── ZIP ──────────────────────────────────────────────────────────────────────

func TestBundle_Entradas(t *testing.T) {
	raw, err := export.Bundle(context.Background(), sampleSale())
	require.NoError(t, err)

	files := readZip(t, raw)
	assert.Equal(t, map[string]string{
		"987654_FolioSIAC.png":      "folio",
		"987654_INE_Frente.jpg":     "f",
		"987654_INE_Reverso.file":   "r",
		"987654_Portabilidad_1.pdf": "a1",
	}, files)
}

func TestBundle_CURPLineaNueva(t *testing.T) {
	s := sampleSale()
	s.FolioSIAC = "5501"
	s.CustomerType = entity.CustomerNewLine
	s.IdType = entity.IdCURP
	s.Documents = entity.SaleDocuments{
		FolioCapture: att("folio.png", "folio"),
		Identity:     entity.NewIdentityDocuments(entity.IdCURP, att("curp.pdf", "curp"), att("ignorado.jpg", "x")),
		Portability:  entity.NewPortabilityAnnexes(entity.CustomerNewLine, att("anexo1.pdf", "a1"), nil),
	}

	raw, err := export.Bundle(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"5501_FolioSIAC.png": "folio",
		"5501_CURP.pdf":      "curp",
	}, readZip(t, raw))

	// mismo caso con INE: las etiquetas cambian
	s.IdType = entity.IdINE
	s.Documents.Identity = entity.NewIdentityDocuments(entity.IdINE, att("curp.pdf", "curp"), nil)
	raw, err = export.Bundle(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"5501_FolioSIAC.png":  "folio",
		"5501_INE_Frente.pdf": "curp",
	}, readZip(t, raw))
}

func TestBundle_PortabilidadSoloSiAplica(t *testing.T) {
	s := sampleSale()
	s.CustomerType = entity.CustomerWinback
	s.Documents.Portability = entity.NewPortabilityAnnexes(s.CustomerType, att("anexo1.pdf", "a1"), nil)

	for _, name := range export.BundleEntries(s) {
		assert.NotContains(t, name, "Portabilidad")
	}
}

func TestBundle_SinAdjuntos(t *testing.T) {
	s := sampleSale()
	s.Documents = entity.SaleDocuments{}
	raw, err := export.Bundle(context.Background(), s)
	assert.ErrorIs(t, err, domain.ErrNothingToExport)
	assert.Nil(t, raw)
}

func TestBundle_ContextoCanceladoNoDevuelveBytes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	raw, err := export.Bundle(ctx, sampleSale())
	assert.ErrorIs(t, err, domain.ErrArchiveFailed)
	assert.Nil(t, raw)
}

func TestSafeFolio(t *testing.T) {
	assert.Equal(t, "SIN_FOLIO", export.SafeFolio(""))
	assert.Equal(t, "AB_12_3", export.SafeFolio("AB-12/3"))
	assert.Equal(t, "SIN_FOLIO_documentos.zip", export.BundleFileName(&entity.Sale{}))
}
