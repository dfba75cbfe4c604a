package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la distribuidora.
// Un producto puede venderse por pieza, por caja o por metro cuadrado;
// cada base de precio es opcional y puede expresarse con y sin IVA.
// Los cálculos de cotización usan siempre la variante sin IVA.
type Product struct {
	ID          string
	Code        string // código único del producto
	Name        string
	Description string
	Format      string // formato comercial, ej. "60x60", "20x30"
	SupplierID  string

	PricePiece    decimal.NullDecimal // precio por pieza sin IVA
	PricePieceVAT decimal.NullDecimal // precio por pieza con IVA
	PriceBox      decimal.NullDecimal // precio por caja sin IVA
	PriceBoxVAT   decimal.NullDecimal // precio por caja con IVA
	PriceM2       decimal.NullDecimal // precio por m² sin IVA
	PriceM2VAT    decimal.NullDecimal // precio por m² con IVA

	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAnyPrice indica si el producto ofrece al menos una base de precio sin IVA.
// Un producto sin ninguna base no puede entrar en una cotización.
func (p *Product) HasAnyPrice() bool {
	return p.PricePiece.Valid || p.PriceBox.Valid || p.PriceM2.Valid
}
