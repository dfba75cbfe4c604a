package dto

// CreateBranchRequest body para POST /api/sucursales.
type CreateBranchRequest struct {
	Name    string `json:"nombre"`
	Address string `json:"direccion,omitempty"`
	Phone   string `json:"telefono,omitempty"`
}

// UpdateBranchRequest body para PUT /api/sucursales/:id.
type UpdateBranchRequest = CreateBranchRequest

// BranchResponse sucursal en respuestas.
type BranchResponse struct {
	ID      string `json:"id"`
	Name    string `json:"nombre"`
	Address string `json:"direccion,omitempty"`
	Phone   string `json:"telefono,omitempty"`
}
