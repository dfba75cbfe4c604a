package entity

import "time"

// Branch representa una sucursal de la distribuidora.
type Branch struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
