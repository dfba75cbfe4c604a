// Package pdf implementa la generación del PDF imprimible de una cotización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Distribuidora  │  COTIZACIÓN + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + envío seleccionado                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Base | P.Unit | Importe           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Envío / IVA 16% / TOTAL                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
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

	appsales "github.com/tu-usuario/materiales-pro/internal/application/sales"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 141, Green: 48, Blue: 58}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var vatRate = decimal.New(16, -2)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa sales.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	companyName string
}

var _ appsales.PDFGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador con el nombre de la
// distribuidora que encabeza el documento.
func NewMarotoPDFGenerator(companyName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{companyName: companyName}
}

// Generate genera el PDF de la cotización y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(q *entity.Quotation, lines []*entity.QuotationLine) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización", true).
		WithAuthor(g.companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.companyName, q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(q))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(q, lines))

	if q.IsCancelled() {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("COTIZACIÓN CANCELADA", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: distribuidora (izq) y folio + fecha (der).
func headerRow(companyName string, q *entity.Quotation) core.Row {
	fecha := q.Date.Format("02/01/2006")
	folio := q.ID
	if len(folio) > 8 {
		folio = folio[:8]
	}
	folio = strings.ToUpper(folio)

	return row.New(18).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Materiales para construcción", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COTIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(folio, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: cliente y variante de envío elegida.
func clientRow(q *entity.Quotation) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(q.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Envío: "+q.ShippingVariant, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de partidas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Base", 2, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

// tableLineRows: una fila por partida, en el orden del carrito.
func tableLineRows(lines []*entity.QuotationLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		importe := l.UnitPrice.Mul(l.Quantity)
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Basis,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(importe),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha. El desglose se deriva
// de las partidas y el total congelado de la cabecera.
func totalsRow(q *entity.Quotation, lines []*entity.QuotationLine) core.Row {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(l.Quantity))
	}
	subtotal = subtotal.Round(2)
	vat := subtotal.Add(q.ShippingCost).Mul(vatRate).Round(2)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(30).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			label("Envío:"),
			label("IVA 16%:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value("$"+formatMoney(subtotal)),
			value("$"+formatMoney(q.ShippingCost)),
			value("$"+formatMoney(vat)),
			grandValue("$"+formatMoney(q.Total)),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea un decimal con dos decimales y comas de miles.
// Ej: 25000 → "25,000.00"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	n := len(intPart)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(intPart) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, ',')
			}
			buf = append(buf, c)
		}
		intPart = string(buf)
	}
	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
