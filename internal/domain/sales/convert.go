package sales

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
)

// ConvertQuotationToOrder crea una orden de venta a partir de una cotización.
// Copia cliente, total y partidas literales. Falla con ErrQuotationCancelled
// si la cotización origen está cancelada; la verificación es local, sin I/O.
// Sin estado inicial explícito, la orden arranca en surtiendo.
func ConvertQuotationToOrder(
	q *entity.Quotation,
	lines []*entity.QuotationLine,
	initialStatus, comments string,
) (*entity.SalesOrder, []*entity.SalesOrderLine, error) {
	if q.IsCancelled() {
		return nil, nil, ErrQuotationCancelled
	}
	if initialStatus == "" {
		initialStatus = entity.OrderStatusPicking
	}
	if !entity.IsValidOrderStatus(initialStatus) {
		return nil, nil, ErrInvalidOrderStatus
	}

	now := time.Now()
	order := &entity.SalesOrder{
		ID:          uuid.New().String(),
		QuotationID: q.ID,
		ClientID:    q.ClientID,
		ClientName:  q.ClientName,
		Total:       q.Total,
		Status:      initialStatus,
		Comments:    comments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	orderLines := make([]*entity.SalesOrderLine, 0, len(lines))
	for _, l := range lines {
		orderLines = append(orderLines, &entity.SalesOrderLine{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Basis:       l.Basis,
			Position:    l.Position,
		})
	}
	return order, orderLines, nil
}

// SetStatus actualiza estado y comentarios de la orden. Acepta cualquiera de
// los cuatro estados en cualquier orden (no hay progresión forzada: mover una
// orden completada de vuelta a surtiendo es una corrección válida).
func SetStatus(o *entity.SalesOrder, status, comments string) (*entity.SalesOrder, error) {
	if !entity.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	out := *o
	out.Status = status
	out.Comments = comments
	out.UpdatedAt = time.Now()
	return &out, nil
}
