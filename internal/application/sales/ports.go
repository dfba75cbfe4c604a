package sales

import (
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción: la cabecera y las partidas
// de una cotización u orden se persisten juntas o no se persiste nada.
type TxRunner interface {
	RunSales(fn func(quotations repository.QuotationRepository, orders repository.SalesOrderRepository) error) error
}

// PDFGenerator produce el PDF imprimible de una cotización.
type PDFGenerator interface {
	Generate(q *entity.Quotation, lines []*entity.QuotationLine) ([]byte, error)
}
