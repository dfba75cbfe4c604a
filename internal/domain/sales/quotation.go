package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
)

// BuildQuotation congela el carrito cotizado en una cotización inmutable.
//
// Valida en este orden, antes de cualquier persistencia:
//  1. cliente seleccionado (ErrMissingClient),
//  2. toda partida con base de precio resuelta (InvalidBasisError con los
//     productos ofensores),
//  3. cantidades positivas (ErrInvalidQuantity).
//
// El precio unitario de cada partida ya incluye el margen; el total es
// subtotal + envío + IVA 16%, redondeado a dos decimales al congelar.
// La función es pura: un error de persistencia posterior no toca el carrito.
func BuildQuotation(
	client *entity.Client,
	lines []PricedLine,
	shippingVariant string,
	shippingCost decimal.Decimal,
) (*entity.Quotation, []*entity.QuotationLine, error) {
	if client == nil {
		return nil, nil, ErrMissingClient
	}

	var offending []string
	for _, l := range lines {
		if l.Basis == "" || !l.Product.HasAnyPrice() {
			offending = append(offending, l.Product.ID)
		}
	}
	if len(offending) > 0 {
		return nil, nil, &InvalidBasisError{ProductIDs: offending}
	}

	for _, l := range lines {
		if !l.Quantity.IsPositive() {
			return nil, nil, ErrInvalidQuantity
		}
	}

	if shippingVariant != entity.ShippingParcel && shippingVariant != entity.ShippingFullUnits {
		return nil, nil, ErrInvalidShippingKind
	}
	if shippingCost.IsNegative() {
		shippingCost = decimal.Zero
	}

	totals := ComputeTotals(lines, shippingCost)
	now := time.Now()
	q := &entity.Quotation{
		ID:              uuid.New().String(),
		ClientID:        client.ID,
		ClientName:      client.Name,
		Date:            now,
		ShippingVariant: shippingVariant,
		ShippingCost:    shippingCost.Round(2),
		Total:           totals.GrandTotal.Round(2),
		Status:          entity.QuotationStatusActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	details := make([]*entity.QuotationLine, 0, len(lines))
	for i, l := range lines {
		details = append(details, &entity.QuotationLine{
			ID:          uuid.New().String(),
			QuotationID: q.ID,
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Quantity:    l.Quantity,
			UnitPrice:   LineUnitPrice(l).Round(2),
			Basis:       string(l.Basis),
			Position:    i,
		})
	}
	return q, details, nil
}

// CancelQuotation marca la cotización como cancelada. La operación es
// idempotente: cancelar una cotización ya cancelada devuelve la misma
// cotización sin error.
func CancelQuotation(q *entity.Quotation) *entity.Quotation {
	out := *q
	if out.Status == entity.QuotationStatusCancelled {
		return &out
	}
	out.Status = entity.QuotationStatusCancelled
	out.UpdatedAt = time.Now()
	return &out
}
