package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/sales"
)

func cotizacionConPartidas(t *testing.T) (*entity.Quotation, []*entity.QuotationLine) {
	t.Helper()
	lines := []sales.PricedLine{
		partida("p1", "100", "2", "10"),
		partida("p2", "45.5", "3", "15"),
	}
	q, details, err := sales.BuildQuotation(clienteDePrueba(), lines, entity.ShippingParcel, decimal.NewFromInt(50))
	require.NoError(t, err)
	return q, details
}

func TestConvertQuotationToOrder_CopiaClienteTotalesYPartidas(t *testing.T) {
	q, details := cotizacionConPartidas(t)

	order, orderLines, err := sales.ConvertQuotationToOrder(q, details, "", "entregar en obra")
	require.NoError(t, err)

	assert.Equal(t, q.ID, order.QuotationID)
	assert.Equal(t, q.ClientID, order.ClientID)
	assert.Equal(t, q.ClientName, order.ClientName)
	assert.True(t, order.Total.Equal(q.Total), "el total se hereda literal")
	assert.Equal(t, entity.OrderStatusPicking, order.Status, "sin estado explícito arranca en surtiendo")
	assert.Equal(t, "entregar en obra", order.Comments)

	require.Len(t, orderLines, len(details))
	for i, d := range details {
		assert.Equal(t, d.ProductID, orderLines[i].ProductID)
		assert.Equal(t, d.ProductName, orderLines[i].ProductName)
		assert.True(t, orderLines[i].Quantity.Equal(d.Quantity))
		assert.True(t, orderLines[i].UnitPrice.Equal(d.UnitPrice))
		assert.Equal(t, d.Basis, orderLines[i].Basis)
		assert.Equal(t, d.Position, orderLines[i].Position)
	}
}

// Una cotización cancelada no puede convertirse en orden.
func TestConvertQuotationToOrder_CanceladaFalla(t *testing.T) {
	q, details := cotizacionConPartidas(t)
	cancelada := sales.CancelQuotation(q)

	_, _, err := sales.ConvertQuotationToOrder(cancelada, details, "", "")

	assert.ErrorIs(t, err, sales.ErrQuotationCancelled)
}

func TestConvertQuotationToOrder_EstadoInicialInvalidoFalla(t *testing.T) {
	q, details := cotizacionConPartidas(t)

	_, _, err := sales.ConvertQuotationToOrder(q, details, "enviada", "")

	assert.ErrorIs(t, err, sales.ErrInvalidOrderStatus)
}

// No hay progresión forzada de estados: completada -> surtiendo es válido
// (el negocio lo usa para corregir capturas).
func TestSetStatus_PermiteTransicionesArbitrarias(t *testing.T) {
	q, details := cotizacionConPartidas(t)
	order, _, err := sales.ConvertQuotationToOrder(q, details, "", "")
	require.NoError(t, err)

	completada, err := sales.SetStatus(order, entity.OrderStatusCompleted, "listo")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, completada.Status)
	assert.Equal(t, "listo", completada.Comments)

	devuelta, err := sales.SetStatus(completada, entity.OrderStatusPicking, "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPicking, devuelta.Status)
	assert.Empty(t, devuelta.Comments, "los comentarios siempre se sobrescriben")
}

func TestSetStatus_EstadoFueraDelEnumFalla(t *testing.T) {
	q, details := cotizacionConPartidas(t)
	order, _, err := sales.ConvertQuotationToOrder(q, details, "", "")
	require.NoError(t, err)

	_, err = sales.SetStatus(order, "cancelado", "")
	assert.ErrorIs(t, err, sales.ErrInvalidOrderStatus)
}
