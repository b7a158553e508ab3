package sales_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/application/sales"
	"github.com/jhoicas/siac-ventas-api/internal/domain"
	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	domainsales "github.com/jhoicas/siac-ventas-api/internal/domain/sales"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/memstore"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

var (
	admin   = &entity.User{ID: "a", Username: "admin", Role: entity.RoleAdmin}
	advisor = &entity.User{ID: "b", Username: "11111111", Role: entity.RoleAdvisor}
	trainee = &entity.User{ID: "c", Username: "22222222", Role: entity.RoleTrainee}
	sup     = &entity.User{ID: "d", Username: "33333333", Role: entity.RoleSupervisor}
)

type fixture struct {
	repo    *memstore.SaleRepo
	catalog *catalog.Catalog
	query   *sales.QueryUseCase
	capture *sales.CaptureUseCase
	export  *sales.ExportUseCase
}

type fakeReceipt struct{ price decimal.Decimal }

func (f *fakeReceipt) GenerateSaleReceipt(_ context.Context, s *entity.Sale, price decimal.Decimal) ([]byte, error) {
	f.price = price
	return []byte("%PDF-" + s.ID), nil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := memstore.NewStore()
	require.NoError(t, err)
	c, err := catalog.Default()
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC) }
	repo := memstore.NewSaleRepository(store)
	v := domainsales.NewValidator(c, entity.AttachmentPolicy{MaxBytes: 1 << 20, AllowedTypes: []string{"image/", "application/pdf"}}, now)
	q := sales.NewQueryUseCase(repo)
	return &fixture{
		repo:    repo,
		catalog: c,
		query:   q,
		capture: sales.NewCaptureUseCase(repo, v),
		export:  sales.NewExportUseCase(q, c, &fakeReceipt{}, now),
	}
}

func draft(name, folio string) domainsales.Draft {
	return domainsales.Draft{
		FullName:        name,
		PhoneNumber:     "5512345678",
		CaptureDate:     "2025-03-14",
		FolioSIAC:       folio,
		ServiceType:     string(entity.ServiceResidential),
		PackageType:     string(entity.PackageDoublePlay),
		SelectedPackage: "Doble Play $599 - 250 Megas",
		CustomerType:    string(entity.CustomerNewLine),
		IdType:          string(entity.IdINE),
	}
}

// seed 5 ventas de 3 capturistas: advisor (3), trainee (1), sup (1).
func (f *fixture) seed(t *testing.T) {
	t.Helper()
	creators := []*entity.User{advisor, trainee, advisor, sup, advisor}
	for i, u := range creators {
		_, err := f.capture.CreateSale(u, draft("Cliente Número", fmt.Sprintf("%d000", i+1)))
		require.NoError(t, err)
	}
}

func folios(list []*entity.Sale) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.FolioSIAC
	}
	return out
}

// ── Alcance por rol ──────────────────────────────────────────────────────────

func TestVisibleSales_AdministradorVeTodas(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	all, err := f.query.VisibleSales(admin)
	require.NoError(t, err)
	assert.Equal(t, []string{"5000", "4000", "3000", "2000", "1000"}, folios(all))
}

func TestVisibleSales_OtrosRolesSoloLasPropias(t *testing.T) {
	f := newFixture(t)
	f.seed(t)

	mine, err := f.query.VisibleSales(advisor)
	require.NoError(t, err)
	assert.Equal(t, []string{"5000", "3000", "1000"}, folios(mine))

	mine, err = f.query.VisibleSales(trainee)
	require.NoError(t, err)
	assert.Equal(t, []string{"2000"}, folios(mine))

	// el supervisor tampoco ve las ventas de su equipo
	mine, err = f.query.VisibleSales(sup)
	require.NoError(t, err)
	assert.Equal(t, []string{"4000"}, folios(mine))
}

func TestGetSale_OcultaNoRevelaExistencia(t *testing.T) {
	f := newFixture(t)
	s, err := f.capture.CreateSale(advisor, draft("Ana", "777"))
	require.NoError(t, err)

	_, err = f.query.GetSale(trainee, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.query.GetSale(trainee, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := f.query.GetSale(admin, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "777", got.FolioSIAC)
}

// ── Búsqueda ─────────────────────────────────────────────────────────────────

func TestSearch_FiltroVacioDevuelveVisibles(t *testing.T) {
	f := newFixture(t)
	f.seed(t)
	list, err := f.query.Search(advisor, dto.SaleFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestSearch_TextoSinAcentosYCombinado(t *testing.T) {
	f := newFixture(t)
	_, err := f.capture.CreateSale(advisor, draft("José Núñez", "123"))
	require.NoError(t, err)
	d := draft("Laura Gómez", "456")
	d.PackageType = string(entity.PackageInternetOnly)
	d.SelectedPackage = "Solo Internet $349 - 80 Megas"
	_, err = f.capture.CreateSale(advisor, d)
	require.NoError(t, err)

	list, err := f.query.Search(admin, dto.SaleFilter{Q: "nunez"})
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, folios(list))

	list, err = f.query.Search(admin, dto.SaleFilter{Q: "45"})
	require.NoError(t, err)
	assert.Equal(t, []string{"456"}, folios(list))

	list, err = f.query.Search(admin, dto.SaleFilter{PackageType: string(entity.PackageDoublePlay), Status: string(entity.StatusPending)})
	require.NoError(t, err)
	assert.Equal(t, []string{"123"}, folios(list))

	list, err = f.query.Search(admin, dto.SaleFilter{CaptureDate: "2025-03-13"})
	require.NoError(t, err)
	assert.Empty(t, list)

	// el filtro nunca amplía el alcance del rol
	list, err = f.query.Search(trainee, dto.SaleFilter{Q: "nunez"})
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ── Estado ───────────────────────────────────────────────────────────────────

func TestUpdateStatus_ConservaLosDemasCampos(t *testing.T) {
	f := newFixture(t)
	s, err := f.capture.CreateSale(advisor, draft("Ana López", "900"))
	require.NoError(t, err)

	updated, err := f.query.UpdateStatus(admin, s.ID, string(entity.StatusInstallation))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInstallation, updated.Status)

	stored, err := f.repo.FindByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInstallation, stored.Status)
	stored.Status = s.Status
	assert.Equal(t, s, stored)
}

func TestUpdateStatus_EstadoInvalidoYVentaAjena(t *testing.T) {
	f := newFixture(t)
	s, err := f.capture.CreateSale(advisor, draft("Ana López", "900"))
	require.NoError(t, err)

	_, err = f.query.UpdateStatus(advisor, s.ID, "Entregado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.query.UpdateStatus(trainee, s.ID, string(entity.StatusPosted))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Captura ──────────────────────────────────────────────────────────────────

func TestCreateSale_InvalidaNoModificaElStore(t *testing.T) {
	f := newFixture(t)
	d := draft("Ana 2", "12a")
	_, err := f.capture.CreateSale(advisor, d)
	fe, ok := domain.AsFieldErrors(err)
	require.True(t, ok)
	assert.True(t, fe.Has(domainsales.FieldFullName))
	assert.True(t, fe.Has(domainsales.FieldFolioSIAC))

	all, err := f.repo.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateSale_PendienteYCapturista(t *testing.T) {
	f := newFixture(t)
	s, err := f.capture.CreateSale(trainee, draft("Ana", "321"))
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, s.Status)
	assert.Equal(t, trainee.Username, s.CreatedBy)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Folio SIAC 321 registrado con éxito!", sales.SuccessMessage(s))
}

// ── Exportación ──────────────────────────────────────────────────────────────

func TestSalesCSV_SinVentasVisibles(t *testing.T) {
	f := newFixture(t)
	_, err := f.capture.CreateSale(advisor, draft("Ana", "1"))
	require.NoError(t, err)

	_, err = f.export.SalesCSV(trainee, dto.SaleFilter{})
	assert.ErrorIs(t, err, domain.ErrNothingToExport)

	art, err := f.export.SalesCSV(advisor, dto.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, "reporte_ventas_2025-03-14.csv", art.FileName)
}

func TestBundle_VentaSinAdjuntos(t *testing.T) {
	f := newFixture(t)
	s, err := f.capture.CreateSale(advisor, draft("Ana", "1"))
	require.NoError(t, err)

	_, err = f.export.Bundle(context.Background(), advisor, s.ID)
	assert.ErrorIs(t, err, domain.ErrNothingToExport)
}

func TestBundle_ConAdjuntos(t *testing.T) {
	f := newFixture(t)
	d := draft("Ana", "55-1")
	d.FolioSIAC = "551"
	d.FolioFile = &entity.Attachment{FileName: "captura.png", ContentType: "image/png", Data: []byte{1}}
	s, err := f.capture.CreateSale(advisor, d)
	require.NoError(t, err)

	art, err := f.export.Bundle(context.Background(), advisor, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "551_documentos.zip", art.FileName)
	assert.NotEmpty(t, art.Data)

	_, err = f.export.Bundle(context.Background(), trainee, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceipt_UsaPrecioDelCatalogo(t *testing.T) {
	f := newFixture(t)
	gen := &fakeReceipt{}
	f.export = sales.NewExportUseCase(f.query, f.catalog, gen, nil)
	s, err := f.capture.CreateSale(advisor, draft("Ana", "42"))
	require.NoError(t, err)

	art, err := f.export.Receipt(context.Background(), advisor, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "42_comprobante.pdf", art.FileName)
	assert.True(t, decimal.NewFromInt(599).Equal(gen.price))
}
