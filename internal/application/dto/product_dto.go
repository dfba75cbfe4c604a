package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/productos.
// Las seis bases de precio son opcionales; los cálculos de cotización usan
// las variantes sin IVA.
type CreateProductRequest struct {
	Code        string `json:"codigo"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	Format      string `json:"formato,omitempty"`
	SupplierID  string `json:"proveedor_id,omitempty"`
	ImageURL    string `json:"imagen_url,omitempty"`

	PricePiece    decimal.NullDecimal `json:"precio_pieza"`
	PricePieceVAT decimal.NullDecimal `json:"precio_pieza_iva"`
	PriceBox      decimal.NullDecimal `json:"precio_caja"`
	PriceBoxVAT   decimal.NullDecimal `json:"precio_caja_iva"`
	PriceM2       decimal.NullDecimal `json:"precio_m2"`
	PriceM2VAT    decimal.NullDecimal `json:"precio_m2_iva"`
}

// UpdateProductRequest body para PUT /api/productos/:id.
type UpdateProductRequest = CreateProductRequest

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string `json:"id"`
	Code        string `json:"codigo"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
	Format      string `json:"formato,omitempty"`
	SupplierID  string `json:"proveedor_id,omitempty"`
	ImageURL    string `json:"imagen_url,omitempty"`

	PricePiece    decimal.NullDecimal `json:"precio_pieza"`
	PricePieceVAT decimal.NullDecimal `json:"precio_pieza_iva"`
	PriceBox      decimal.NullDecimal `json:"precio_caja"`
	PriceBoxVAT   decimal.NullDecimal `json:"precio_caja_iva"`
	PriceM2       decimal.NullDecimal `json:"precio_m2"`
	PriceM2VAT    decimal.NullDecimal `json:"precio_m2_iva"`
}
