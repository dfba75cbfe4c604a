package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/sales"
)

func partida(id, precio, cantidad, margen string) sales.PricedLine {
	p := &entity.Product{ID: id, Name: "Producto " + id, PricePiece: nd(precio)}
	return sales.PricedLine{
		CartLine: sales.CartLine{Product: p, Quantity: decimal.RequireFromString(cantidad)},
	}.WithBasis(sales.BasisPiece).WithMargin(decimal.RequireFromString(margen))
}

// Escenario de referencia: una partida de 100 x 2 con 10% de margen y envío de 50.
func TestComputeTotals_EscenarioReferencia(t *testing.T) {
	lines := []sales.PricedLine{partida("p1", "100", "2", "10")}

	totals := sales.ComputeTotals(lines, decimal.NewFromInt(50))

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("220")),
		"subtotal: esperaba 220, obtuve %s", totals.Subtotal)
	assert.True(t, totals.SubtotalWithShipping.Equal(decimal.RequireFromString("270")),
		"subtotal con envío: esperaba 270, obtuve %s", totals.SubtotalWithShipping)
	assert.True(t, totals.VAT.Equal(decimal.RequireFromString("43.2")),
		"IVA al 16%%: esperaba 43.2, obtuve %s", totals.VAT)
	assert.True(t, totals.GrandTotal.Equal(decimal.RequireFromString("313.2")),
		"total: esperaba 313.2, obtuve %s", totals.GrandTotal)
	assert.True(t, totals.MarginTotal.Equal(decimal.RequireFromString("20")),
		"ganancia: esperaba 20, obtuve %s", totals.MarginTotal)
}

// El subtotal debe descomponerse exactamente como la suma de los importes
// de partida, sin redondeo intermedio.
func TestSubtotal_DescomposicionExacta(t *testing.T) {
	lines := []sales.PricedLine{
		partida("p1", "33.33", "1.5", "7"),
		partida("p2", "0.1", "3", "12.5"),
		partida("p3", "249.99", "2.25", "0"),
	}

	suma := decimal.Zero
	for _, l := range lines {
		suma = suma.Add(sales.LineTotal(l))
	}

	assert.True(t, sales.Subtotal(lines).Equal(suma),
		"Subtotal debe ser exactamente Σ LineTotal: %s vs %s", sales.Subtotal(lines), suma)
}

// El total debe ser no decreciente en el costo de envío y en el margen de
// cualquier partida, con cantidades y precios base fijos.
func TestGrandTotal_MonotoniaEnEnvioYMargen(t *testing.T) {
	base := []sales.PricedLine{partida("p1", "100", "2", "10")}

	t.Run("envío", func(t *testing.T) {
		prev := decimal.Zero
		for _, envio := range []string{"0", "10", "50", "50", "120.75"} {
			total := sales.ComputeTotals(base, decimal.RequireFromString(envio)).GrandTotal
			assert.True(t, total.GreaterThanOrEqual(prev),
				"con envío %s el total bajó: %s < %s", envio, total, prev)
			prev = total
		}
	})

	t.Run("margen", func(t *testing.T) {
		prev := decimal.Zero
		for _, margen := range []string{"0", "5", "10", "10", "33.3"} {
			lines := []sales.PricedLine{partida("p1", "100", "2", margen)}
			total := sales.ComputeTotals(lines, decimal.NewFromInt(50)).GrandTotal
			assert.True(t, total.GreaterThanOrEqual(prev),
				"con margen %s el total bajó: %s < %s", margen, total, prev)
			prev = total
		}
	})
}

func TestComputeTotals_EnvioNegativoSeTrataComoCero(t *testing.T) {
	lines := []sales.PricedLine{partida("p1", "100", "1", "0")}

	conCero := sales.ComputeTotals(lines, decimal.Zero)
	conNegativo := sales.ComputeTotals(lines, decimal.NewFromInt(-20))

	assert.True(t, conNegativo.GrandTotal.Equal(conCero.GrandTotal))
	assert.True(t, conNegativo.ShippingCost.IsZero())
}

func TestSubtotal_PartidaSinBaseContribuyeCero(t *testing.T) {
	sinBase := sales.PricedLine{
		CartLine: sales.CartLine{Product: &entity.Product{ID: "px"}, Quantity: decimal.NewFromInt(4)},
	}
	lines := []sales.PricedLine{partida("p1", "100", "2", "10"), sinBase}

	require.True(t, sales.Subtotal(lines).Equal(decimal.RequireFromString("220")),
		"la partida sin base no debe sumar al subtotal")
}
