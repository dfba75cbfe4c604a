package entity

import "time"

// Supplier representa un proveedor de materiales.
type Supplier struct {
	ID        string
	Name      string
	Address   string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
