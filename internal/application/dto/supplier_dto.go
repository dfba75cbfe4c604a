package dto

// CreateSupplierRequest body para POST /api/proveedores.
type CreateSupplierRequest struct {
	Name    string `json:"nombre"`
	Address string `json:"direccion,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telefono,omitempty"`
}

// UpdateSupplierRequest body para PUT /api/proveedores/:id.
type UpdateSupplierRequest = CreateSupplierRequest

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"nombre"`
	Address string `json:"direccion,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telefono,omitempty"`
}
