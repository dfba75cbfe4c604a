package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cotización. Una cotización se crea activa y solo puede
// pasar a cancelada (cambio de estado, nunca mutación de sus campos).
const (
	QuotationStatusActive    = "activa"
	QuotationStatusCancelled = "cancelada"
)

// Variantes de envío disponibles al cotizar.
const (
	ShippingParcel    = "Servicio de Paquetería"
	ShippingFullUnits = "Servicio de Unidades Completas"
)

// Quotation representa la cabecera de una cotización inmutable.
// Total incluye subtotal con margen, costo de envío e IVA del 16%.
type Quotation struct {
	ID              string
	ClientID        string
	ClientName      string // denormalizado al momento de crear
	Date            time.Time
	ShippingVariant string
	ShippingCost    decimal.Decimal
	Total           decimal.Decimal
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsCancelled indica si la cotización fue cancelada.
func (q *Quotation) IsCancelled() bool {
	return q.Status == QuotationStatusCancelled
}

// QuotationLine representa una partida de la cotización con el precio resuelto.
// UnitPrice ya incluye el margen de ganancia; Basis es la base de precio
// elegida (pieza, caja o m2).
type QuotationLine struct {
	ID          string
	QuotationID string
	ProductID   string
	ProductName string // denormalizado al momento de crear
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Basis       string // tipo_variante: pieza | caja | m2
	Position    int    // orden de la partida dentro de la cotización
}
