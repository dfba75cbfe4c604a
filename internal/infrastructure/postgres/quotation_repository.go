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

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación del puerto QuotationRepository sobre PostgreSQL
// (usable con pool o tx; la creación corre siempre dentro de una tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador de persistencia para cotizaciones.
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// Create persiste la cabecera de una cotización.
func (r *QuotationRepo) Create(quotation *entity.Quotation) error {
	query := `
		INSERT INTO quotations (id, client_id, client_name, date, shipping_variant, shipping_cost, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		quotation.ID, quotation.ClientID, quotation.ClientName, quotation.Date,
		quotation.ShippingVariant, quotation.ShippingCost, quotation.Total,
		quotation.Status, quotation.CreatedAt, quotation.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

// CreateLine persiste una partida de cotización.
func (r *QuotationRepo) CreateLine(line *entity.QuotationLine) error {
	query := `
		INSERT INTO quotation_lines (id, quotation_id, product_id, product_name, quantity, unit_price, basis, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.QuotationID, line.ProductID, line.ProductName,
		line.Quantity, line.UnitPrice, line.Basis, line.Position,
	)
	if err != nil {
		return fmt.Errorf("insert quotation line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una cotización.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	query := `
		SELECT id, client_id, client_name, date, shipping_variant, shipping_cost, total, status, created_at, updated_at
		FROM quotations WHERE id = $1`
	var q entity.Quotation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&q.ID, &q.ClientID, &q.ClientName, &q.Date, &q.ShippingVariant,
		&q.ShippingCost, &q.Total, &q.Status, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return &q, nil
}

// GetLines devuelve las partidas de una cotización ordenadas por posición.
func (r *QuotationRepo) GetLines(quotationID string) ([]*entity.QuotationLine, error) {
	query := `
		SELECT id, quotation_id, product_id, product_name, quantity, unit_price, basis, position
		FROM quotation_lines WHERE quotation_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("get quotation lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.QuotationLine
	for rows.Next() {
		var l entity.QuotationLine
		if err := rows.Scan(&l.ID, &l.QuotationID, &l.ProductID, &l.ProductName,
			&l.Quantity, &l.UnitPrice, &l.Basis, &l.Position); err != nil {
			return nil, fmt.Errorf("scan quotation line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List lista cotizaciones sin partidas, más recientes primero.
func (r *QuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	query := `
		SELECT id, client_id, client_name, date, shipping_variant, shipping_cost, total, status, created_at, updated_at
		FROM quotations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var q entity.Quotation
		if err := rows.Scan(&q.ID, &q.ClientID, &q.ClientName, &q.Date, &q.ShippingVariant,
			&q.ShippingCost, &q.Total, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de la cotización (cancelación). La cabecera
// es inmutable en todo lo demás.
func (r *QuotationRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE quotations SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quotation status: %w", err)
	}
	return nil
}
