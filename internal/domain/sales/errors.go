package sales

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de validación locales: se detectan antes de cualquier I/O.
var (
	ErrMissingClient       = errors.New("cotización sin cliente seleccionado")
	ErrInvalidQuantity     = errors.New("cantidad inválida en partida")
	ErrQuotationCancelled  = errors.New("la cotización está cancelada")
	ErrInvalidOrderStatus  = errors.New("estado de orden inválido")
	ErrInvalidShippingKind = errors.New("variante de envío inválida")
)

// InvalidBasisError indica qué productos del carrito no tienen base de precio
// resuelta. Se reporta completo para que el operador corrija todas las
// partidas en una sola pasada.
type InvalidBasisError struct {
	ProductIDs []string
}

func (e *InvalidBasisError) Error() string {
	return fmt.Sprintf("partidas sin base de precio: %s", strings.Join(e.ProductIDs, ", "))
}
