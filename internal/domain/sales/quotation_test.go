package sales_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/sales"
)

func clienteDePrueba() *entity.Client {
	return &entity.Client{ID: "c1", Name: "Constructora del Norte", Discount: decimal.NewFromInt(10)}
}

func TestBuildQuotation_SinClienteFalla(t *testing.T) {
	lines := []sales.PricedLine{partida("p1", "100", "2", "10")}

	_, _, err := sales.BuildQuotation(nil, lines, entity.ShippingParcel, decimal.Zero)

	assert.ErrorIs(t, err, sales.ErrMissingClient,
		"sin cliente la validación debe fallar antes de cualquier persistencia")
}

func TestBuildQuotation_PartidasSinBaseReportaOfensores(t *testing.T) {
	sinPrecios := sales.PricedLine{
		CartLine: sales.CartLine{Product: &entity.Product{ID: "px"}, Quantity: decimal.NewFromInt(1)},
	}
	sinBase := sales.PricedLine{
		CartLine: sales.CartLine{Product: &entity.Product{ID: "py", PricePiece: nd("10")}, Quantity: decimal.NewFromInt(1)},
	}
	lines := []sales.PricedLine{partida("p1", "100", "2", "10"), sinPrecios, sinBase}

	_, _, err := sales.BuildQuotation(clienteDePrueba(), lines, entity.ShippingParcel, decimal.Zero)

	var basisErr *sales.InvalidBasisError
	require.ErrorAs(t, err, &basisErr)
	assert.Equal(t, []string{"px", "py"}, basisErr.ProductIDs,
		"deben reportarse todos los productos sin base, en orden")
}

func TestBuildQuotation_CantidadNoPositivaFalla(t *testing.T) {
	lines := []sales.PricedLine{partida("p1", "100", "2", "10")}
	lines[0].Quantity = decimal.Zero

	_, _, err := sales.BuildQuotation(clienteDePrueba(), lines, entity.ShippingParcel, decimal.Zero)

	assert.ErrorIs(t, err, sales.ErrInvalidQuantity)
}

func TestBuildQuotation_VarianteDeEnvioInvalidaFalla(t *testing.T) {
	lines := []sales.PricedLine{partida("p1", "100", "2", "10")}

	_, _, err := sales.BuildQuotation(clienteDePrueba(), lines, "Mensajería", decimal.Zero)

	assert.ErrorIs(t, err, sales.ErrInvalidShippingKind)
}

func TestBuildQuotation_CongelaTotalesYDenormaliza(t *testing.T) {
	lines := []sales.PricedLine{partida("p1", "100", "2", "10")}

	q, details, err := sales.BuildQuotation(clienteDePrueba(), lines, entity.ShippingParcel, decimal.NewFromInt(50))
	require.NoError(t, err)

	assert.Equal(t, "c1", q.ClientID)
	assert.Equal(t, "Constructora del Norte", q.ClientName, "el nombre del cliente se denormaliza")
	assert.Equal(t, entity.QuotationStatusActive, q.Status)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("313.2")),
		"total congelado: esperaba 313.2, obtuve %s", q.Total)

	require.Len(t, details, 1)
	d := details[0]
	assert.Equal(t, "p1", d.ProductID)
	assert.True(t, d.UnitPrice.Equal(decimal.RequireFromString("110")),
		"el precio unitario persistido incluye el margen: esperaba 110, obtuve %s", d.UnitPrice)
	assert.Equal(t, string(sales.BasisPiece), d.Basis)
}

// Ida y vuelta: las tuplas {producto, cantidad, base} del carrito deben
// reproducirse en las partidas persistidas, en el mismo orden.
func TestBuildQuotation_ConservaOrdenDePartidas(t *testing.T) {
	lines := []sales.PricedLine{
		partida("p3", "10", "1", "0"),
		partida("p1", "20", "2.5", "5"),
		partida("p2", "30", "4", "12"),
	}

	_, details, err := sales.BuildQuotation(clienteDePrueba(), lines, entity.ShippingFullUnits, decimal.Zero)
	require.NoError(t, err)
	require.Len(t, details, 3)

	for i, l := range lines {
		assert.Equal(t, l.Product.ID, details[i].ProductID, "posición %d", i)
		assert.True(t, details[i].Quantity.Equal(l.Quantity), "posición %d", i)
		assert.Equal(t, string(l.Basis), details[i].Basis, "posición %d", i)
		assert.Equal(t, i, details[i].Position)
	}
}

func TestCancelQuotation_EsIdempotente(t *testing.T) {
	lines := []sales.PricedLine{partida("p1", "100", "1", "0")}
	q, _, err := sales.BuildQuotation(clienteDePrueba(), lines, entity.ShippingParcel, decimal.Zero)
	require.NoError(t, err)

	una := sales.CancelQuotation(q)
	assert.Equal(t, entity.QuotationStatusCancelled, una.Status)

	dos := sales.CancelQuotation(una)
	assert.Equal(t, entity.QuotationStatusCancelled, dos.Status,
		"cancelar dos veces debe ser un no-op exitoso")
	assert.Equal(t, entity.QuotationStatusActive, q.Status,
		"la cotización original no debe mutarse")
}

func TestInvalidBasisError_MensajeIncluyeProductos(t *testing.T) {
	err := &sales.InvalidBasisError{ProductIDs: []string{"p1", "p2"}}
	assert.Contains(t, err.Error(), "p1, p2")
	assert.False(t, errors.Is(err, sales.ErrMissingClient))
}
