package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/sales"
)

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestDefaultBasis_PrefierePiezaLuegoCajaLuegoM2(t *testing.T) {
	cases := []struct {
		name     string
		producto *entity.Product
		want     sales.PriceBasis
	}{
		{"con pieza", &entity.Product{PricePiece: nd("10"), PriceBox: nd("90"), PriceM2: nd("25")}, sales.BasisPiece},
		{"sin pieza, con caja", &entity.Product{PriceBox: nd("90"), PriceM2: nd("25")}, sales.BasisBox},
		{"solo m2", &entity.Product{PriceM2: nd("25")}, sales.BasisM2},
		{"sin precios", &entity.Product{}, sales.PriceBasis("")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sales.DefaultBasis(tc.producto))
		})
	}
}

func TestWithBasis_ResuelvePrecioSinIVA(t *testing.T) {
	p := &entity.Product{ID: "p1", PricePiece: nd("10"), PriceBox: nd("90")}
	line := sales.PricedLine{CartLine: sales.CartLine{Product: p, Quantity: decimal.NewFromInt(1)}}

	caja := line.WithBasis(sales.BasisBox)
	assert.Equal(t, sales.BasisBox, caja.Basis)
	assert.True(t, caja.UnitPrice.Equal(decimal.RequireFromString("90")))
}

func TestWithBasis_SinPrecioParaLaBaseCaeAPieza(t *testing.T) {
	p := &entity.Product{ID: "p1", PricePiece: nd("10")}
	line := sales.PricedLine{CartLine: sales.CartLine{Product: p, Quantity: decimal.NewFromInt(1)}}

	m2 := line.WithBasis(sales.BasisM2)

	assert.Equal(t, sales.BasisM2, m2.Basis, "la base pedida se conserva")
	assert.True(t, m2.UnitPrice.Equal(decimal.RequireFromString("10")),
		"sin precio por m² debe usarse el precio por pieza")
}

func TestWithMargin_EsIdempotente(t *testing.T) {
	p := &entity.Product{ID: "p1", PricePiece: nd("100")}
	line := sales.PricedLine{CartLine: sales.CartLine{Product: p, Quantity: decimal.NewFromInt(2)}}.
		WithBasis(sales.BasisPiece)

	diez := decimal.NewFromInt(10)
	una := line.WithMargin(diez)
	dos := una.WithMargin(diez)

	assert.Equal(t, una, dos, "asignar el mismo margen dos veces debe dar la misma partida")
}

func TestParsePercent_FalloDeParseoCoerceACero(t *testing.T) {
	assert.True(t, sales.ParsePercent("12.5").Equal(decimal.RequireFromString("12.5")))
	assert.True(t, sales.ParsePercent("abc").IsZero(), "texto no numérico debe coercionar a 0")
	assert.True(t, sales.ParsePercent("").IsZero())
	assert.True(t, sales.ParsePercent("-3").Equal(decimal.NewFromInt(-3)),
		"valores negativos se aceptan tal cual; la UI decide si los permite")
}

func TestApplyClientDefaultMargin_SobrescribeTodasLasPartidas(t *testing.T) {
	cart := sales.Cart{}.
		Add(&entity.Product{ID: "p1", PricePiece: nd("100")}).
		Add(&entity.Product{ID: "p2", PriceBox: nd("90")})
	lines := sales.PriceCart(cart)
	lines[0] = lines[0].WithMargin(decimal.NewFromInt(25))

	cliente := &entity.Client{ID: "c1", Name: "Constructora Sur", Discount: decimal.NewFromInt(15)}
	out := sales.ApplyClientDefaultMargin(lines, cliente)

	for i := range out {
		assert.True(t, out[i].Margin.Equal(decimal.NewFromInt(15)),
			"partida %d debe quedar con el porcentaje del cliente", i)
	}
	require.True(t, lines[0].Margin.Equal(decimal.NewFromInt(25)),
		"la lista original no debe mutarse")
}

func TestPriceCart_AplicaBasePorDefecto(t *testing.T) {
	cart := sales.Cart{}.
		Add(&entity.Product{ID: "p1", PriceBox: nd("90")}).
		Add(&entity.Product{ID: "p2"})

	lines := sales.PriceCart(cart)

	require.Len(t, lines, 2)
	assert.Equal(t, sales.BasisBox, lines[0].Basis)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.RequireFromString("90")))
	assert.Equal(t, sales.PriceBasis(""), lines[1].Basis,
		"un producto sin precios queda sin base y se marca inválido después")
}
