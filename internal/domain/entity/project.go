package entity

import "time"

// Project representa una obra o proyecto de un cliente.
// Un proyecto pertenece a exactamente un cliente a la vez; la reasignación
// cambia el dueño de forma atómica (un solo UPDATE).
type Project struct {
	ID          string
	ClientID    string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
