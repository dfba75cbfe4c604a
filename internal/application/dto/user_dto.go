package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"nombre,omitempty"`
	Role     string `json:"rol,omitempty"` // admin, vendedor (default)
	BranchID string `json:"sucursal_id,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

// UpdateUserRequest body para PUT /api/usuarios/:id. Campos vacíos se
// conservan sin cambio.
type UpdateUserRequest struct {
	Name     string `json:"nombre,omitempty"`
	Role     string `json:"rol,omitempty"`
	BranchID string `json:"sucursal_id,omitempty"`
	Status   string `json:"status,omitempty"`
}

// UserResponse usuario en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"nombre"`
	Role      string    `json:"rol"`
	BranchID  string    `json:"sucursal_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
