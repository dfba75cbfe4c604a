package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/materiales-pro/internal/application/dto"
	appsales "github.com/tu-usuario/materiales-pro/internal/application/sales"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	domsales "github.com/tu-usuario/materiales-pro/internal/domain/sales"
)

func orderEnv(t *testing.T) (*stubQuotationRepo, *stubOrderRepo, *appsales.OrderUseCase, string) {
	t.Helper()
	quotations := newStubQuotationRepo()
	orders := newStubOrderRepo()
	tx := &stubTxRunner{quotations: quotations, orders: orders}
	uc := appsales.NewOrderUseCase(quotations, orders, tx)

	q := &entity.Quotation{
		ID:         "q1",
		ClientID:   "c1",
		ClientName: "Constructora Ramírez",
		Total:      decimal.RequireFromString("313.2"),
		Status:     entity.QuotationStatusActive,
	}
	require.NoError(t, quotations.Create(q))
	require.NoError(t, quotations.CreateLine(&entity.QuotationLine{
		ID:          "l1",
		QuotationID: "q1",
		ProductID:   "p1",
		ProductName: "Azulejo Marfil 60x60",
		Quantity:    decimal.NewFromInt(2),
		UnitPrice:   decimal.RequireFromString("110"),
		Basis:       "pieza",
	}))
	quotations.creates = 0
	return quotations, orders, uc, "q1"
}

func TestConvertirCotizacionEnOrden(t *testing.T) {
	_, orders, uc, qID := orderEnv(t)

	resp, err := uc.ConvertFromQuotation(dto.ConvertOrderRequest{QuotationID: qID})
	require.NoError(t, err)

	assert.Equal(t, qID, resp.QuotationID)
	assert.Equal(t, "Constructora Ramírez", resp.ClientName, "cliente heredado")
	assert.Equal(t, "313.2", resp.Total.String(), "total heredado sin recalcular")
	assert.Equal(t, entity.OrderStatusPicking, resp.Status, "estado inicial por defecto")

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "110", resp.Lines[0].UnitPrice.String(), "partida copiada literal")
	assert.Len(t, orders.orders, 1)
}

func TestConvertirCotizacionCanceladaFalla(t *testing.T) {
	quotations, orders, uc, qID := orderEnv(t)
	quotations.quotations[qID].Status = entity.QuotationStatusCancelled

	_, err := uc.ConvertFromQuotation(dto.ConvertOrderRequest{QuotationID: qID})
	assert.ErrorIs(t, err, domsales.ErrQuotationCancelled)
	assert.Empty(t, orders.orders, "nada persistido")
}

func TestConvertirConEstadoInicialInvalido(t *testing.T) {
	_, _, uc, qID := orderEnv(t)

	_, err := uc.ConvertFromQuotation(dto.ConvertOrderRequest{
		QuotationID: qID,
		Status:      "enviada",
	})
	assert.ErrorIs(t, err, domsales.ErrInvalidOrderStatus)
}

func TestActualizarEstadoAdmiteSaltosHaciaAtras(t *testing.T) {
	_, _, uc, qID := orderEnv(t)

	created, err := uc.ConvertFromQuotation(dto.ConvertOrderRequest{
		QuotationID: qID,
		Status:      entity.OrderStatusCompleted,
	})
	require.NoError(t, err)

	// corrección: de completada de vuelta a surtiendo
	updated, err := uc.UpdateStatus(created.ID, dto.UpdateOrderRequest{
		Status:   entity.OrderStatusPicking,
		Comments: "captura errónea, se reabre",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPicking, updated.Status)
	assert.Equal(t, "captura errónea, se reabre", updated.Comments)
}

func TestActualizarEstadoInvalidoFalla(t *testing.T) {
	_, _, uc, qID := orderEnv(t)

	created, err := uc.ConvertFromQuotation(dto.ConvertOrderRequest{QuotationID: qID})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(created.ID, dto.UpdateOrderRequest{Status: "pausada"})
	assert.ErrorIs(t, err, domsales.ErrInvalidOrderStatus)
}
