package sales_test

import (
	"time"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
)

// Dobles en memoria para los casos de uso de ventas.

type stubClientRepo struct {
	clients map[string]*entity.Client
	calls   int
}

func (s *stubClientRepo) Create(c *entity.Client) error { s.clients[c.ID] = c; return nil }
func (s *stubClientRepo) GetByID(id string) (*entity.Client, error) {
	s.calls++
	return s.clients[id], nil
}
func (s *stubClientRepo) List(limit, offset int) ([]*entity.Client, error) { return nil, nil }
func (s *stubClientRepo) Search(term string, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}
func (s *stubClientRepo) Update(c *entity.Client) error { return nil }
func (s *stubClientRepo) Delete(id string) error        { return nil }

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (s *stubProductRepo) Create(p *entity.Product) error { s.products[p.ID] = p; return nil }
func (s *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return s.products[id], nil
}
func (s *stubProductRepo) GetByCode(code string) (*entity.Product, error) { return nil, nil }
func (s *stubProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) SearchByName(term string, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (s *stubProductRepo) Update(p *entity.Product) error { return nil }
func (s *stubProductRepo) Delete(id string) error         { return nil }

type stubQuotationRepo struct {
	quotations map[string]*entity.Quotation
	lines      map[string][]*entity.QuotationLine
	creates    int
}

func (s *stubQuotationRepo) Create(q *entity.Quotation) error {
	s.creates++
	s.quotations[q.ID] = q
	return nil
}
func (s *stubQuotationRepo) CreateLine(l *entity.QuotationLine) error {
	s.lines[l.QuotationID] = append(s.lines[l.QuotationID], l)
	return nil
}
func (s *stubQuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	return s.quotations[id], nil
}
func (s *stubQuotationRepo) GetLines(quotationID string) ([]*entity.QuotationLine, error) {
	return s.lines[quotationID], nil
}
func (s *stubQuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	out := make([]*entity.Quotation, 0, len(s.quotations))
	for _, q := range s.quotations {
		out = append(out, q)
	}
	return out, nil
}
func (s *stubQuotationRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	q := s.quotations[id]
	q.Status = status
	q.UpdatedAt = updatedAt
	return nil
}

type stubOrderRepo struct {
	orders map[string]*entity.SalesOrder
	lines  map[string][]*entity.SalesOrderLine
}

func (s *stubOrderRepo) Create(o *entity.SalesOrder) error { s.orders[o.ID] = o; return nil }
func (s *stubOrderRepo) CreateLine(l *entity.SalesOrderLine) error {
	s.lines[l.OrderID] = append(s.lines[l.OrderID], l)
	return nil
}
func (s *stubOrderRepo) GetByID(id string) (*entity.SalesOrder, error) { return s.orders[id], nil }
func (s *stubOrderRepo) GetLines(orderID string) ([]*entity.SalesOrderLine, error) {
	return s.lines[orderID], nil
}
func (s *stubOrderRepo) List(limit, offset int) ([]*entity.SalesOrder, error) {
	out := make([]*entity.SalesOrder, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}
func (s *stubOrderRepo) UpdateStatus(id, status, comments string, updatedAt time.Time) error {
	o := s.orders[id]
	o.Status = status
	o.Comments = comments
	o.UpdatedAt = updatedAt
	return nil
}

// stubTxRunner pasa los mismos repos en memoria; no hay transacción real.
type stubTxRunner struct {
	quotations repository.QuotationRepository
	orders     repository.SalesOrderRepository
}

func (s *stubTxRunner) RunSales(fn func(repository.QuotationRepository, repository.SalesOrderRepository) error) error {
	return fn(s.quotations, s.orders)
}

func newStubQuotationRepo() *stubQuotationRepo {
	return &stubQuotationRepo{
		quotations: make(map[string]*entity.Quotation),
		lines:      make(map[string][]*entity.QuotationLine),
	}
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		orders: make(map[string]*entity.SalesOrder),
		lines:  make(map[string][]*entity.SalesOrderLine),
	}
}
