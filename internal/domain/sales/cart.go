// Package sales implementa el núcleo puro del flujo de cotización:
// carrito, selección de base de precio y margen, cálculo de totales,
// armado de la cotización y conversión a orden de venta.
//
// Ninguna función de este paquete hace I/O ni muta sus argumentos;
// todas devuelven estructuras nuevas. La persistencia es responsabilidad
// de la capa de aplicación.
package sales

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
)

// CartLine es una partida del carrito en edición.
// QuantityInput guarda el texto crudo del campo cantidad mientras el
// operador teclea; Quantity solo cambia al confirmar (CommitQuantity).
type CartLine struct {
	Product       *entity.Product
	Quantity      decimal.Decimal
	QuantityInput string
}

// Cart es el carrito de la venta en curso. Vive solo en memoria hasta que
// se convierte en cotización.
type Cart []CartLine

// quantityPattern acepta decimales parciales mientras se teclea:
// "12", "12.", "12.5", ".5" o vacío. Cualquier otra cosa se rechaza.
var quantityPattern = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)?$`)

var one = decimal.NewFromInt(1)

// Add agrega un producto al carrito. Si ya existe una partida para el mismo
// producto, incrementa su cantidad en 1; si no, agrega una partida nueva con
// cantidad 1.
func (c Cart) Add(p *entity.Product) Cart {
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].Product.ID == p.ID {
			out[i].Quantity = out[i].Quantity.Add(one)
			out[i].QuantityInput = ""
			return out
		}
	}
	return append(out, CartLine{Product: p, Quantity: one})
}

// UpdateQuantityInput registra lo que el operador va tecleando en el campo
// cantidad. Solo acepta dígitos con punto decimal opcional (o vacío); una
// entrada que no cumple el patrón se descarta sin mutar la partida.
func (c Cart) UpdateQuantityInput(productID, raw string) Cart {
	if !quantityPattern.MatchString(raw) {
		return c
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].Product.ID == productID {
			out[i].QuantityInput = raw
		}
	}
	return out
}

// CommitQuantity confirma el valor tecleado (blur del campo). Si el texto no
// es un número positivo, la cantidad regresa a 1; si lo es, se redondea a dos
// decimales.
func (c Cart) CommitQuantity(productID, raw string) Cart {
	qty := one
	if v, err := decimal.NewFromString(raw); err == nil && v.IsPositive() {
		qty = v.Round(2)
	}
	out := make(Cart, len(c))
	copy(out, c)
	for i := range out {
		if out[i].Product.ID == productID {
			out[i].Quantity = qty
			out[i].QuantityInput = ""
		}
	}
	return out
}

// Remove quita la partida del producto indicado.
func (c Cart) Remove(productID string) Cart {
	out := make(Cart, 0, len(c))
	for _, line := range c {
		if line.Product.ID != productID {
			out = append(out, line)
		}
	}
	return out
}

// Clear devuelve un carrito vacío.
func (c Cart) Clear() Cart {
	return Cart{}
}
