package dto

import "github.com/shopspring/decimal"

// QuotationItemRequest partida para POST /api/cotizaciones.
// TipoPrecio es la base elegida (pieza|caja|m2). Ganancia es el porcentaje de
// margen; si es nil se usa el descuento del cliente como margen por defecto.
type QuotationItemRequest struct {
	ProductID  string           `json:"producto_id"`
	Quantity   decimal.Decimal  `json:"cantidad"`
	PriceBasis string           `json:"tipo_precio"`
	Margin     *decimal.Decimal `json:"ganancia,omitempty"`
}

// CreateQuotationRequest body para POST /api/cotizaciones.
type CreateQuotationRequest struct {
	ClientID        string                 `json:"cliente_id"`
	ShippingVariant string                 `json:"tipo_envio"`
	ShippingCost    decimal.Decimal        `json:"costo_envio"`
	Items           []QuotationItemRequest `json:"partidas"`
}

// QuotationLineResponse partida resuelta de la cotización.
// PrecioUnitario ya incluye el margen de ganancia.
type QuotationLineResponse struct {
	ProductID   string          `json:"producto_id"`
	ProductName string          `json:"nombre"`
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Basis       string          `json:"tipo_variante"`
}

// QuotationResponse cotización con partidas y desglose de totales.
type QuotationResponse struct {
	ID              string                  `json:"id"`
	ClientID        string                  `json:"cliente_id"`
	ClientName      string                  `json:"cliente_nombre"`
	Date            string                  `json:"fecha"`
	ShippingVariant string                  `json:"tipo_envio"`
	ShippingCost    decimal.Decimal         `json:"costo_envio"`
	Subtotal        decimal.Decimal         `json:"subtotal"`
	VAT             decimal.Decimal         `json:"iva"`
	Total           decimal.Decimal         `json:"total"`
	Status          string                  `json:"estado"`
	Lines           []QuotationLineResponse `json:"partidas"`
}

// ConvertOrderRequest body para POST /api/ordenes-venta: convierte una
// cotización existente en orden de venta.
type ConvertOrderRequest struct {
	QuotationID string `json:"cotizacion_id"`
	Status      string `json:"estado,omitempty"` // default surtiendo
	Comments    string `json:"comentarios,omitempty"`
}

// UpdateOrderRequest body para PUT /api/ordenes-venta/:id.
type UpdateOrderRequest struct {
	Status   string `json:"estado"`
	Comments string `json:"comentarios"`
}

// OrderLineResponse partida de la orden.
type OrderLineResponse = QuotationLineResponse

// OrderResponse orden de venta en respuestas.
type OrderResponse struct {
	ID          string              `json:"id"`
	QuotationID string              `json:"cotizacion_id"`
	ClientID    string              `json:"cliente_id"`
	ClientName  string              `json:"cliente_nombre"`
	Total       decimal.Decimal     `json:"total"`
	Status      string              `json:"estado"`
	Comments    string              `json:"comentarios,omitempty"`
	Lines       []OrderLineResponse `json:"partidas,omitempty"`
}
