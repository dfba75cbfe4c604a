package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación del puerto SalesOrderRepository sobre PostgreSQL.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador de persistencia para órdenes de venta.
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

// Create persiste la cabecera de una orden.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (id, quotation_id, client_id, client_name, total, status, comments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.QuotationID, order.ClientID, order.ClientName,
		order.Total, order.Status, order.Comments, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

// CreateLine persiste una partida de la orden.
func (r *SalesOrderRepo) CreateLine(line *entity.SalesOrderLine) error {
	query := `
		INSERT INTO sales_order_lines (id, order_id, product_id, product_name, quantity, unit_price, basis, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, line.ProductID, line.ProductName,
		line.Quantity, line.UnitPrice, line.Basis, line.Position,
	)
	if err != nil {
		return fmt.Errorf("insert sales order line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `
		SELECT id, quotation_id, client_id, client_name, total, status, comments, created_at, updated_at
		FROM sales_orders WHERE id = $1`
	var o entity.SalesOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.QuotationID, &o.ClientID, &o.ClientName, &o.Total,
		&o.Status, &o.Comments, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return &o, nil
}

// GetLines devuelve las partidas de una orden ordenadas por posición.
func (r *SalesOrderRepo) GetLines(orderID string) ([]*entity.SalesOrderLine, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, basis, position
		FROM sales_order_lines WHERE order_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get sales order lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrderLine
	for rows.Next() {
		var l entity.SalesOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.ProductName,
			&l.Quantity, &l.UnitPrice, &l.Basis, &l.Position); err != nil {
			return nil, fmt.Errorf("scan sales order line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List lista órdenes sin partidas, más recientes primero.
func (r *SalesOrderRepo) List(limit, offset int) ([]*entity.SalesOrder, error) {
	query := `
		SELECT id, quotation_id, client_id, client_name, total, status, comments, created_at, updated_at
		FROM sales_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrder
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(&o.ID, &o.QuotationID, &o.ClientID, &o.ClientName, &o.Total,
			&o.Status, &o.Comments, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia estado y comentarios de la orden.
func (r *SalesOrderRepo) UpdateStatus(id, status, comments string, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales_orders SET status = $2, comments = $3, updated_at = $4 WHERE id = $1`,
		id, status, comments, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales order status: %w", err)
	}
	return nil
}
