package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente de la distribuidora.
// Discount es el porcentaje asociado al cliente; históricamente se llama
// "descuento" pero se aplica como margen de ganancia por defecto al cotizar.
type Client struct {
	ID        string
	Name      string
	Address   string
	Email     string
	Phone     string
	Discount  decimal.Decimal // porcentaje; margen por defecto en cotizaciones
	CreatedAt time.Time
	UpdatedAt time.Time
}
