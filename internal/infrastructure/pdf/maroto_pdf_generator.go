// Package pdf genera el comprobante imprimible de una venta capturada.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Portal de Ventas SIAC  │  Folio + Fecha de captura  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Teléfono + Identificación                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SERVICIO: Tipo | Paquete | Cliente | Precio mensual         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DOCUMENTOS: lista de adjuntos recibidos / faltantes         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el folio + estado + capturista               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/siac-ventas-api/internal/domain/entity"
)

// ContentType tipo MIME del comprobante.
const ContentType = "application/pdf"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator genera el comprobante de venta con Maroto v2.
type MarotoReceiptGenerator struct {
	appName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(appName string) *MarotoReceiptGenerator {
	if appName == "" {
		appName = "Portal de Ventas SIAC"
	}
	return &MarotoReceiptGenerator{appName: appName}
}

// GenerateSaleReceipt genera el PDF y devuelve sus bytes. price es el precio declarado
// en el catálogo para el paquete de la venta (cero si ya no existe).
func (g *MarotoReceiptGenerator) GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, price decimal.Decimal) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Venta", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(serviceRow(sale, price))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for _, r := range documentRows(sale) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del portal (izq) y folio + fecha de captura (der).
func headerRow(appName string, sale *entity.Sale) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Registrado por: "+sale.CreatedBy, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Folio SIAC "+nonEmpty(sale.FolioSIAC, "—"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha de captura: "+sale.CaptureDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(sale *entity.Sale) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.FullName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Teléfono: %s   |   Identificación: %s",
				nonEmpty(sale.PhoneNumber, "—"),
				nonEmpty(string(sale.IdType), "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del servicio contratado.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Servicio", 2, align.Left),
		h("Paquete", 5, align.Left),
		h("Cliente", 2, align.Center),
		h("Precio mensual", 3, align.Right),
	)
}

// serviceRow: una fila con el paquete seleccionado.
func serviceRow(sale *entity.Sale, price decimal.Decimal) core.Row {
	priceText := "—"
	if price.IsPositive() {
		priceText = "$" + formatMoney(price.StringFixed(0))
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(
			string(sale.ServiceType),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(5).Add(text.New(
			sale.SelectedPackage,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			string(sale.CustomerType),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			priceText,
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// documentRows: checklist de adjuntos esperados según tipo de identificación y cliente.
func documentRows(sale *entity.Sale) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DOCUMENTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, item := range checklist(sale) {
		mark := "Pendiente"
		if item.att != nil {
			mark = item.att.FileName
		}
		rows = append(rows, row.New(5).Add(
			col.New(5).Add(text.New(item.label, props.Text{Size: 8, Top: 0.5, Left: 2})),
			col.New(7).Add(text.New(mark, props.Text{Size: 8, Top: 0.5, Color: colorGray})),
		))
	}
	return rows
}

type checkItem struct {
	label string
	att   *entity.Attachment
}

func checklist(sale *entity.Sale) []checkItem {
	d := sale.Documents
	items := []checkItem{{"Captura del Folio SIAC", d.FolioCapture}}
	if sale.IdType == entity.IdCURP {
		items = append(items, checkItem{"CURP", d.IDFile1()})
	} else {
		items = append(items,
			checkItem{"INE (Frente)", d.IDFile1()},
			checkItem{"INE (Reverso)", d.IDFile2()})
	}
	items = append(items, checkItem{"Comprobante de Domicilio", d.ProofOfAddress})
	if sale.CustomerType == entity.CustomerPortability {
		items = append(items,
			checkItem{"Anexo de Portabilidad 1", d.PortabilityFile1()},
			checkItem{"Anexo de Portabilidad 2", d.PortabilityFile2()})
	}
	return items
}

// footerRow: QR con el folio + estado actual.
func footerRow(sale *entity.Sale) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(nonEmpty(sale.FolioSIAC, sale.ID), props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Estado: "+string(sale.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 4, Left: 3, Color: colorPrimary,
			}),
			text.New("ID de venta: "+sale.ID, props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
			text.New("Conserve este comprobante para el seguimiento de la instalación.", props.Text{
				Size: 7, Top: 20, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta comas de miles en un string numérico sin decimales.
// Ej: "1499" → "1,499", "1000000" → "1,000,000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
