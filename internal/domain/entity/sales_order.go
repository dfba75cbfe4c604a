package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta. El flujo nominal es
// surtiendo -> en_almacen -> en_entrega -> completada, pero la operación de
// actualización acepta cualquier estado válido en cualquier orden: el negocio
// usa los saltos hacia atrás para corregir capturas erróneas.
const (
	OrderStatusPicking     = "surtiendo"
	OrderStatusInWarehouse = "en_almacen"
	OrderStatusInDelivery  = "en_entrega"
	OrderStatusCompleted   = "completada"
)

// IsValidOrderStatus verifica que el estado sea uno de los cuatro enumerados.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPicking, OrderStatusInWarehouse, OrderStatusInDelivery, OrderStatusCompleted:
		return true
	}
	return false
}

// SalesOrder representa una orden de venta derivada de una cotización.
// Hereda cliente, totales y partidas; añade estado mutable y comentarios.
type SalesOrder struct {
	ID          string
	QuotationID string
	ClientID    string
	ClientName  string
	Total       decimal.Decimal
	Status      string
	Comments    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SalesOrderLine partida de la orden, copiada literal de la cotización origen.
type SalesOrderLine struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Basis       string
	Position    int
}
