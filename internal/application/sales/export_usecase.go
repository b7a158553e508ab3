package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/siac-ventas-api/internal/application/dto"
	"github.com/jhoicas/siac-ventas-api/internal/domain/catalog"
	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
	"github.com/jhoicas/siac-ventas-api/internal/infrastructure/export"
)

// ReceiptGenerator puerto para el comprobante PDF de una venta.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, price decimal.Decimal) ([]byte, error)
}

// Artifact archivo listo para descargar.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportUseCase reportes CSV, paquetes ZIP y comprobantes PDF sobre ventas visibles.
type ExportUseCase struct {
	query   *QueryUseCase
	catalog *catalog.Catalog
	receipt ReceiptGenerator
	now     func() time.Time
}

// NewExportUseCase construye el caso de uso. now nil usa time.Now.
func NewExportUseCase(query *QueryUseCase, c *catalog.Catalog, receipt ReceiptGenerator, now func() time.Time) *ExportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportUseCase{query: query, catalog: c, receipt: receipt, now: now}
}

// SalesCSV reporte de las ventas visibles que cumplen el filtro.
// Sin ventas devuelve domain.ErrNothingToExport.
func (uc *ExportUseCase) SalesCSV(actor *entity.User, f dto.SaleFilter) (*Artifact, error) {
	list, err := uc.query.Search(actor, f)
	if err != nil {
		return nil, err
	}
	data, err := export.SalesCSV(list)
	if err != nil {
		return nil, err
	}
	return &Artifact{FileName: export.SalesFileName(uc.now()), ContentType: export.CSVContentType, Data: data}, nil
}

// Bundle ZIP con los adjuntos de una venta visible.
func (uc *ExportUseCase) Bundle(ctx context.Context, actor *entity.User, id string) (*Artifact, error) {
	s, err := uc.query.GetSale(actor, id)
	if err != nil {
		return nil, err
	}
	data, err := export.Bundle(ctx, s)
	if err != nil {
		return nil, err
	}
	return &Artifact{FileName: export.BundleFileName(s), ContentType: export.ZipContentType, Data: data}, nil
}

// Receipt comprobante PDF de una venta visible.
func (uc *ExportUseCase) Receipt(ctx context.Context, actor *entity.User, id string) (*Artifact, error) {
	s, err := uc.query.GetSale(actor, id)
	if err != nil {
		return nil, err
	}
	data, err := uc.receipt.GenerateSaleReceipt(ctx, s, uc.catalog.PriceOf(s))
	if err != nil {
		return nil, err
	}
	return &Artifact{
		FileName:    export.SafeFolio(s.FolioSIAC) + "_comprobante.pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}
