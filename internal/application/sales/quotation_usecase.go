package sales

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/materiales-pro/internal/application/dto"
	"github.com/tu-usuario/materiales-pro/internal/domain"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
	domsales "github.com/tu-usuario/materiales-pro/internal/domain/sales"
)

const dateLayout = "2006-01-02"

// QuotationUseCase arma, consulta y cancela cotizaciones.
type QuotationUseCase struct {
	clientRepo    repository.ClientRepository
	productRepo   repository.ProductRepository
	quotationRepo repository.QuotationRepository
	tx            TxRunner
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	quotationRepo repository.QuotationRepository,
	tx TxRunner,
) *QuotationUseCase {
	return &QuotationUseCase{
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		quotationRepo: quotationRepo,
		tx:            tx,
	}
}

// Create arma la cotización a partir de las partidas del request y la
// persiste. El margen de una partida sin ganancia explícita es el porcentaje
// del cliente. Toda la validación ocurre antes de tocar la base: un request
// sin cliente o con partidas inválidas no persiste nada.
func (uc *QuotationUseCase) Create(in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if in.ClientID == "" {
		return nil, domsales.ErrMissingClient
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	lines := make([]domsales.PricedLine, 0, len(in.Items))
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		line := domsales.PricedLine{
			CartLine: domsales.CartLine{Product: product, Quantity: item.Quantity},
		}
		basis := domsales.PriceBasis(item.PriceBasis)
		if basis == "" {
			basis = domsales.DefaultBasis(product)
		} else if !domsales.IsValidBasis(basis) {
			return nil, domain.ErrInvalidInput
		}
		if basis != "" {
			line = line.WithBasis(basis)
		}
		if item.Margin != nil {
			line = line.WithMargin(*item.Margin)
		} else {
			line = line.WithMargin(client.Discount)
		}
		lines = append(lines, line)
	}

	quotation, qLines, err := domsales.BuildQuotation(client, lines, in.ShippingVariant, in.ShippingCost)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunSales(func(quotations repository.QuotationRepository, _ repository.SalesOrderRepository) error {
		if err := quotations.Create(quotation); err != nil {
			return err
		}
		for _, l := range qLines {
			if err := quotations.CreateLine(l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(quotation, qLines), nil
}

// GetByID obtiene una cotización con sus partidas.
func (uc *QuotationUseCase) GetByID(id string) (*dto.QuotationResponse, error) {
	quotation, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.quotationRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(quotation, lines), nil
}

// List lista cotizaciones sin partidas, más recientes primero.
func (uc *QuotationUseCase) List(limit, offset int) ([]*dto.QuotationResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.quotationRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		out = append(out, toQuotationResponse(q, nil))
	}
	return out, nil
}

// Cancel marca la cotización como cancelada. Cancelar una ya cancelada es
// idempotente y no falla.
func (uc *QuotationUseCase) Cancel(id string) (*dto.QuotationResponse, error) {
	quotation, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, domain.ErrNotFound
	}
	cancelled := domsales.CancelQuotation(quotation)
	if cancelled.Status != quotation.Status {
		if err := uc.quotationRepo.UpdateStatus(id, cancelled.Status, cancelled.UpdatedAt); err != nil {
			return nil, err
		}
	}
	lines, err := uc.quotationRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(cancelled, lines), nil
}

// toQuotationResponse arma la respuesta. El subtotal se reconstruye de las
// partidas (unitario ya con margen); el IVA se deriva del total congelado
// para que el desglose cuadre contra lo persistido.
func toQuotationResponse(q *entity.Quotation, lines []*entity.QuotationLine) *dto.QuotationResponse {
	resp := &dto.QuotationResponse{
		ID:              q.ID,
		ClientID:        q.ClientID,
		ClientName:      q.ClientName,
		Date:            q.Date.Format(dateLayout),
		ShippingVariant: q.ShippingVariant,
		ShippingCost:    q.ShippingCost,
		Total:           q.Total,
		Status:          q.Status,
	}
	if len(lines) > 0 {
		subtotal := decimal.Zero
		resp.Lines = make([]dto.QuotationLineResponse, 0, len(lines))
		for _, l := range lines {
			subtotal = subtotal.Add(l.UnitPrice.Mul(l.Quantity))
			resp.Lines = append(resp.Lines, dto.QuotationLineResponse{
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
				Basis:       l.Basis,
			})
		}
		resp.Subtotal = subtotal.Round(2)
		resp.VAT = q.Total.Sub(resp.Subtotal).Sub(q.ShippingCost)
	}
	return resp
}
