package sales

import (
	"github.com/tu-usuario/materiales-pro/internal/application/dto"
	"github.com/tu-usuario/materiales-pro/internal/domain"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
	domsales "github.com/tu-usuario/materiales-pro/internal/domain/sales"
)

// OrderUseCase convierte cotizaciones en órdenes de venta y administra
// su estado.
type OrderUseCase struct {
	quotationRepo repository.QuotationRepository
	orderRepo     repository.SalesOrderRepository
	tx            TxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	quotationRepo repository.QuotationRepository,
	orderRepo repository.SalesOrderRepository,
	tx TxRunner,
) *OrderUseCase {
	return &OrderUseCase{quotationRepo: quotationRepo, orderRepo: orderRepo, tx: tx}
}

// ConvertFromQuotation crea la orden a partir de una cotización activa.
// Una cotización cancelada falla con ErrQuotationCancelled; sin estado
// explícito la orden arranca en surtiendo.
func (uc *OrderUseCase) ConvertFromQuotation(in dto.ConvertOrderRequest) (*dto.OrderResponse, error) {
	if in.QuotationID == "" {
		return nil, domain.ErrInvalidInput
	}
	quotation, err := uc.quotationRepo.GetByID(in.QuotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, domain.ErrNotFound
	}
	qLines, err := uc.quotationRepo.GetLines(in.QuotationID)
	if err != nil {
		return nil, err
	}

	order, oLines, err := domsales.ConvertQuotationToOrder(quotation, qLines, in.Status, in.Comments)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunSales(func(_ repository.QuotationRepository, orders repository.SalesOrderRepository) error {
		if err := orders.Create(order); err != nil {
			return err
		}
		for _, l := range oLines {
			if err := orders.CreateLine(l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, oLines), nil
}

// GetByID obtiene una orden con sus partidas.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// List lista órdenes sin partidas, más recientes primero.
func (uc *OrderUseCase) List(limit, offset int) ([]*dto.OrderResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o, nil))
	}
	return out, nil
}

// UpdateStatus cambia estado y comentarios de la orden. Cualquier estado
// válido se acepta en cualquier orden; un estado fuera del catálogo falla
// con ErrInvalidOrderStatus.
func (uc *OrderUseCase) UpdateStatus(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	updated, err := domsales.SetStatus(order, in.Status, in.Comments)
	if err != nil {
		return nil, err
	}
	if err := uc.orderRepo.UpdateStatus(id, updated.Status, updated.Comments, updated.UpdatedAt); err != nil {
		return nil, err
	}
	lines, err := uc.orderRepo.GetLines(id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated, lines), nil
}

func toOrderResponse(o *entity.SalesOrder, lines []*entity.SalesOrderLine) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:          o.ID,
		QuotationID: o.QuotationID,
		ClientID:    o.ClientID,
		ClientName:  o.ClientName,
		Total:       o.Total,
		Status:      o.Status,
		Comments:    o.Comments,
	}
	if len(lines) > 0 {
		resp.Lines = make([]dto.OrderLineResponse, 0, len(lines))
		for _, l := range lines {
			resp.Lines = append(resp.Lines, dto.OrderLineResponse{
				ProductID:   l.ProductID,
				ProductName: l.ProductName,
				Quantity:    l.Quantity,
				UnitPrice:   l.UnitPrice,
				Basis:       l.Basis,
			})
		}
	}
	return resp
}
