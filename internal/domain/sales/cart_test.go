package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/sales"
)

func productoConPiezas(id string, precioPieza string) *entity.Product {
	return &entity.Product{
		ID:         id,
		Code:       "P-" + id,
		Name:       "Producto " + id,
		PricePiece: decimal.NewNullDecimal(decimal.RequireFromString(precioPieza)),
	}
}

func TestCart_AddMismoProductoAcumulaCantidad(t *testing.T) {
	p := productoConPiezas("p1", "100")

	cart := sales.Cart{}.Add(p).Add(p)

	require.Len(t, cart, 1, "agregar dos veces el mismo producto debe dejar una sola partida")
	assert.True(t, cart[0].Quantity.Equal(decimal.NewFromInt(2)),
		"la cantidad debe acumularse: esperaba 2, obtuve %s", cart[0].Quantity)
}

func TestCart_AddProductosDistintosAgregaPartidas(t *testing.T) {
	cart := sales.Cart{}.
		Add(productoConPiezas("p1", "100")).
		Add(productoConPiezas("p2", "80"))

	require.Len(t, cart, 2)
	assert.Equal(t, "p1", cart[0].Product.ID, "el orden de inserción debe conservarse")
	assert.Equal(t, "p2", cart[1].Product.ID)
}

func TestCart_AddNoMutaElCarritoOriginal(t *testing.T) {
	p := productoConPiezas("p1", "100")
	original := sales.Cart{}.Add(p)

	_ = original.Add(p)

	assert.True(t, original[0].Quantity.Equal(decimal.NewFromInt(1)),
		"Add debe devolver un carrito nuevo sin mutar el original")
}

func TestCart_UpdateQuantityInput_AceptaDecimalesParciales(t *testing.T) {
	p := productoConPiezas("p1", "100")
	cart := sales.Cart{}.Add(p)

	for _, raw := range []string{"", "5", "5.", "5.25", ".5"} {
		updated := cart.UpdateQuantityInput("p1", raw)
		assert.Equal(t, raw, updated[0].QuantityInput, "entrada %q debe aceptarse", raw)
	}
}

func TestCart_UpdateQuantityInput_RechazaEntradaNoNumerica(t *testing.T) {
	p := productoConPiezas("p1", "100")
	cart := sales.Cart{}.Add(p).UpdateQuantityInput("p1", "5")

	for _, raw := range []string{"abc", "-5", "1,5", "5.2.3", "5x"} {
		updated := cart.UpdateQuantityInput("p1", raw)
		assert.Equal(t, "5", updated[0].QuantityInput,
			"entrada %q debe rechazarse sin mutar la partida", raw)
	}
}

func TestCart_CommitQuantity_ValoresInvalidosRegresanAUno(t *testing.T) {
	p := productoConPiezas("p1", "100")

	for _, raw := range []string{"", "abc", "-5", "0"} {
		cart := sales.Cart{}.Add(p).CommitQuantity("p1", raw)
		assert.True(t, cart[0].Quantity.Equal(decimal.NewFromInt(1)),
			"confirmar %q debe regresar la cantidad a 1, obtuve %s", raw, cart[0].Quantity)
	}
}

func TestCart_CommitQuantity_RedondeaADosDecimales(t *testing.T) {
	p := productoConPiezas("p1", "100")

	cart := sales.Cart{}.Add(p).CommitQuantity("p1", "2.345")

	assert.True(t, cart[0].Quantity.Equal(decimal.RequireFromString("2.35")),
		"la cantidad confirmada debe redondearse a dos decimales, obtuve %s", cart[0].Quantity)
	assert.Empty(t, cart[0].QuantityInput, "el texto pendiente debe limpiarse al confirmar")
}

func TestCart_RemoveYClear(t *testing.T) {
	cart := sales.Cart{}.
		Add(productoConPiezas("p1", "100")).
		Add(productoConPiezas("p2", "80"))

	sinP1 := cart.Remove("p1")
	require.Len(t, sinP1, 1)
	assert.Equal(t, "p2", sinP1[0].Product.ID)

	assert.Empty(t, cart.Clear(), "Clear debe devolver un carrito vacío")
	require.Len(t, cart, 2, "Clear no debe mutar el carrito original")
}
