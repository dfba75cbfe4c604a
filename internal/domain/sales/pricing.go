package sales

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
)

// PriceBasis es la base de precio de una partida: por pieza, por caja o por
// metro cuadrado. El valor viaja tal cual en el campo tipo_variante.
type PriceBasis string

const (
	BasisPiece PriceBasis = "pieza"
	BasisBox   PriceBasis = "caja"
	BasisM2    PriceBasis = "m2"
)

// IsValidBasis verifica que la base sea una de las tres enumeradas.
func IsValidBasis(b PriceBasis) bool {
	return b == BasisPiece || b == BasisBox || b == BasisM2
}

// PricedLine es una partida del carrito con base de precio y margen asignados.
// UnitPrice es el precio base sin IVA según Basis; el precio cotizado se
// obtiene con LineUnitPrice (base más margen).
type PricedLine struct {
	CartLine
	Basis     PriceBasis      // vacío = aún sin base resuelta
	UnitPrice decimal.Decimal // precio sin IVA para Basis
	Margin    decimal.Decimal // porcentaje de ganancia sobre el precio base
}

// basePriceFor devuelve el precio sin IVA del producto para la base pedida.
func basePriceFor(p *entity.Product, basis PriceBasis) (decimal.Decimal, bool) {
	var np decimal.NullDecimal
	switch basis {
	case BasisPiece:
		np = p.PricePiece
	case BasisBox:
		np = p.PriceBox
	case BasisM2:
		np = p.PriceM2
	}
	return np.Decimal, np.Valid
}

// DefaultBasis infiere la base inicial de un producto: pieza si existe,
// si no caja, si no m², y vacío cuando el producto no tiene ningún precio.
func DefaultBasis(p *entity.Product) PriceBasis {
	for _, b := range []PriceBasis{BasisPiece, BasisBox, BasisM2} {
		if _, ok := basePriceFor(p, b); ok {
			return b
		}
	}
	return ""
}

// PriceCart convierte el carrito en partidas cotizables aplicando la base
// por defecto de cada producto. El margen inicia en cero hasta que se asigna
// manualmente o al seleccionar cliente.
func PriceCart(cart Cart) []PricedLine {
	lines := make([]PricedLine, 0, len(cart))
	for _, cl := range cart {
		line := PricedLine{CartLine: cl}
		if basis := DefaultBasis(cl.Product); basis != "" {
			line = line.WithBasis(basis)
		}
		lines = append(lines, line)
	}
	return lines
}

// WithBasis asigna la base de precio y resuelve el precio unitario sin IVA.
// Si el producto no tiene precio para la base pedida, cae al precio por pieza;
// sin precio por pieza el unitario queda en cero y la partida se reporta como
// inválida al armar la cotización.
func (l PricedLine) WithBasis(basis PriceBasis) PricedLine {
	l.Basis = basis
	if price, ok := basePriceFor(l.Product, basis); ok {
		l.UnitPrice = price
		return l
	}
	if price, ok := basePriceFor(l.Product, BasisPiece); ok {
		l.UnitPrice = price
		return l
	}
	l.UnitPrice = decimal.Zero
	return l
}

// WithMargin asigna el porcentaje de ganancia. Acepta cualquier valor
// numérico, incluido cero o por debajo del porcentaje del cliente.
func (l PricedLine) WithMargin(percent decimal.Decimal) PricedLine {
	l.Margin = percent
	return l
}

// ParsePercent convierte el texto del campo de ganancia a porcentaje.
// Un valor no numérico se convierte en 0.
func ParsePercent(raw string) decimal.Decimal {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// ApplyClientDefaultMargin sobrescribe el margen de todas las partidas con el
// porcentaje del cliente. Se invoca una vez al seleccionar cliente; el campo
// se llama "descuento" por razones históricas pero se aplica como margen
// aditivo de ganancia.
func ApplyClientDefaultMargin(lines []PricedLine, client *entity.Client) []PricedLine {
	if client == nil {
		return lines
	}
	out := make([]PricedLine, len(lines))
	copy(out, lines)
	for i := range out {
		out[i].Margin = client.Discount
	}
	return out
}
