package dto

import "github.com/shopspring/decimal"

// CreateClientRequest body para POST /api/clientes.
// Descuento es el porcentaje que se aplica como margen de ganancia por
// defecto al cotizar para este cliente.
type CreateClientRequest struct {
	Name     string          `json:"nombre"`
	Address  string          `json:"direccion,omitempty"`
	Email    string          `json:"email,omitempty"`
	Phone    string          `json:"telefono,omitempty"`
	Discount decimal.Decimal `json:"descuento"`
}

// UpdateClientRequest body para PUT /api/clientes/:id.
type UpdateClientRequest = CreateClientRequest

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"nombre"`
	Address  string          `json:"direccion,omitempty"`
	Email    string          `json:"email,omitempty"`
	Phone    string          `json:"telefono,omitempty"`
	Discount decimal.Decimal `json:"descuento"`
}

// CreateProjectRequest body para POST /api/proyectos.
type CreateProjectRequest struct {
	ClientID    string `json:"cliente_id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}

// UpdateProjectRequest body para PUT /api/proyectos/:id.
type UpdateProjectRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}

// ReassignProjectRequest body para PUT /api/proyectos/:id/reasignar.
type ReassignProjectRequest struct {
	NewClientID string `json:"cliente_id"`
}

// ProjectResponse proyecto en respuestas.
type ProjectResponse struct {
	ID          string `json:"id"`
	ClientID    string `json:"cliente_id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion,omitempty"`
}
