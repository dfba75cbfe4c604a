package sales

import "github.com/shopspring/decimal"

// VATRate es la tasa de IVA fija del 16%. No es configurable.
var VATRate = decimal.New(16, -2)

var hundred = decimal.NewFromInt(100)

// LineUnitPrice devuelve el precio unitario cotizado: base más margen.
// precio = unitario * (1 + margen/100), sin redondeo intermedio.
func LineUnitPrice(l PricedLine) decimal.Decimal {
	factor := one.Add(l.Margin.Div(hundred))
	return l.UnitPrice.Mul(factor)
}

// LineTotal devuelve el importe de la partida: unitario cotizado por cantidad.
func LineTotal(l PricedLine) decimal.Decimal {
	return LineUnitPrice(l).Mul(l.Quantity)
}

// Subtotal suma los importes de las partidas con base de precio resuelta.
// Las partidas sin base contribuyen cero; BuildQuotation las rechaza antes
// de enviar.
func Subtotal(lines []PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.Basis == "" {
			continue
		}
		total = total.Add(LineTotal(l))
	}
	return total
}

// MarginTotal suma la ganancia absoluta de todas las partidas:
// Σ (base * margen/100) * cantidad.
func MarginTotal(lines []PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.Basis == "" {
			continue
		}
		gain := l.UnitPrice.Mul(l.Margin.Div(hundred)).Mul(l.Quantity)
		total = total.Add(gain)
	}
	return total
}

// Totals agrupa los montos derivados de una cotización en curso.
// Los valores se mantienen sin redondear; el redondeo a dos decimales ocurre
// solo al serializar o persistir, para no acumular error.
type Totals struct {
	Subtotal             decimal.Decimal
	MarginTotal          decimal.Decimal
	ShippingCost         decimal.Decimal
	SubtotalWithShipping decimal.Decimal
	VAT                  decimal.Decimal
	GrandTotal           decimal.Decimal
}

// ComputeTotals deriva todos los montos del carrito cotizado más el envío.
// Un costo de envío negativo se trata como cero.
func ComputeTotals(lines []PricedLine, shippingCost decimal.Decimal) Totals {
	if shippingCost.IsNegative() {
		shippingCost = decimal.Zero
	}
	subtotal := Subtotal(lines)
	withShipping := subtotal.Add(shippingCost)
	vat := withShipping.Mul(VATRate)
	return Totals{
		Subtotal:             subtotal,
		MarginTotal:          MarginTotal(lines),
		ShippingCost:         shippingCost,
		SubtotalWithShipping: withShipping,
		VAT:                  vat,
		GrandTotal:           withShipping.Add(vat),
	}
}
