package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/materiales-pro/internal/application/dto"
	appsales "github.com/tu-usuario/materiales-pro/internal/application/sales"
	"github.com/tu-usuario/materiales-pro/internal/domain"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	domsales "github.com/tu-usuario/materiales-pro/internal/domain/sales"
)

func nd(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func fixtureEnv() (*stubClientRepo, *stubProductRepo, *stubQuotationRepo, *appsales.QuotationUseCase) {
	clients := &stubClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Constructora Ramírez", Discount: decimal.RequireFromString("10")},
	}}
	products := &stubProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", Code: "AZ-100", Name: "Azulejo Marfil 60x60", PricePiece: nd("100")},
		"p2": {ID: "p2", Code: "AD-200", Name: "Adhesivo Gris 20kg", PriceBox: nd("50")},
		"sin-precio": {ID: "sin-precio", Code: "XX-000", Name: "Sin precio"},
	}}
	quotations := newStubQuotationRepo()
	tx := &stubTxRunner{quotations: quotations, orders: newStubOrderRepo()}
	uc := appsales.NewQuotationUseCase(clients, products, quotations, tx)
	return clients, products, quotations, uc
}

func margen(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestCrearCotizacionCongelaTotales(t *testing.T) {
	_, _, quotations, uc := fixtureEnv()

	resp, err := uc.Create(dto.CreateQuotationRequest{
		ClientID:        "c1",
		ShippingVariant: entity.ShippingParcel,
		ShippingCost:    decimal.RequireFromString("50"),
		Items: []dto.QuotationItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(2), PriceBasis: "pieza", Margin: margen("10")},
		},
	})
	require.NoError(t, err)

	// unitario 100 con margen 10% = 110; subtotal 220; +envío 50 = 270; IVA 43.2
	assert.Equal(t, "220", resp.Subtotal.String(), "subtotal con margen incluido")
	assert.Equal(t, "43.2", resp.VAT.String(), "IVA del 16% sobre subtotal más envío")
	assert.Equal(t, "313.2", resp.Total.String(), "total congelado")
	assert.Equal(t, "Constructora Ramírez", resp.ClientName, "nombre denormalizado")
	assert.Equal(t, entity.QuotationStatusActive, resp.Status)

	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "110", resp.Lines[0].UnitPrice.String(), "unitario ya incluye margen")
	assert.Equal(t, "pieza", resp.Lines[0].Basis)
	assert.Equal(t, 1, quotations.creates, "cabecera persistida una vez")
}

func TestCrearCotizacionMargenPorDefectoDelCliente(t *testing.T) {
	_, _, _, uc := fixtureEnv()

	resp, err := uc.Create(dto.CreateQuotationRequest{
		ClientID:        "c1",
		ShippingVariant: entity.ShippingFullUnits,
		Items: []dto.QuotationItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)}, // sin ganancia explícita
		},
	})
	require.NoError(t, err)

	// margen del cliente 10% sobre precio pieza 100
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, "110", resp.Lines[0].UnitPrice.String(), "usa el porcentaje del cliente")
}

func TestCrearCotizacionSinClienteNoPersiste(t *testing.T) {
	clients, _, quotations, uc := fixtureEnv()

	_, err := uc.Create(dto.CreateQuotationRequest{
		ShippingVariant: entity.ShippingParcel,
		Items: []dto.QuotationItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domsales.ErrMissingClient)
	assert.Zero(t, clients.calls, "falla antes de consultar repos")
	assert.Zero(t, quotations.creates, "no toca la base")
}

func TestCrearCotizacionClienteInexistente(t *testing.T) {
	_, _, _, uc := fixtureEnv()

	_, err := uc.Create(dto.CreateQuotationRequest{
		ClientID:        "fantasma",
		ShippingVariant: entity.ShippingParcel,
		Items: []dto.QuotationItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearCotizacionProductoSinPrecioReportaOfensor(t *testing.T) {
	_, _, quotations, uc := fixtureEnv()

	_, err := uc.Create(dto.CreateQuotationRequest{
		ClientID:        "c1",
		ShippingVariant: entity.ShippingParcel,
		Items: []dto.QuotationItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
			{ProductID: "sin-precio", Quantity: decimal.NewFromInt(1)},
		},
	})
	var basisErr *domsales.InvalidBasisError
	require.ErrorAs(t, err, &basisErr)
	assert.Equal(t, []string{"sin-precio"}, basisErr.ProductIDs)
	assert.Zero(t, quotations.creates, "nada persistido con partidas inválidas")
}

func TestCrearCotizacionBaseInvalida(t *testing.T) {
	_, _, _, uc := fixtureEnv()

	_, err := uc.Create(dto.CreateQuotationRequest{
		ClientID:        "c1",
		ShippingVariant: entity.ShippingParcel,
		Items: []dto.QuotationItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1), PriceBasis: "kilo"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancelarCotizacionEsIdempotente(t *testing.T) {
	_, _, _, uc := fixtureEnv()

	created, err := uc.Create(dto.CreateQuotationRequest{
		ClientID:        "c1",
		ShippingVariant: entity.ShippingParcel,
		Items: []dto.QuotationItemRequest{
			{ProductID: "p1", Quantity: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)

	first, err := uc.Cancel(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuotationStatusCancelled, first.Status)

	second, err := uc.Cancel(created.ID)
	require.NoError(t, err, "cancelar dos veces no falla")
	assert.Equal(t, entity.QuotationStatusCancelled, second.Status)
}

func TestObtenerCotizacionInexistente(t *testing.T) {
	_, _, _, uc := fixtureEnv()

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
