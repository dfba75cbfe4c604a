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

var _ repository.FinanceRecordRepository = (*FinanceRecordRepo)(nil)

// FinanceRecordRepo implementación del puerto FinanceRecordRepository sobre PostgreSQL.
type FinanceRecordRepo struct {
	q Querier
}

// NewFinanceRecordRepository construye el adaptador de persistencia para registros financieros.
func NewFinanceRecordRepository(q Querier) *FinanceRecordRepo {
	return &FinanceRecordRepo{q: q}
}

// Create persiste un nuevo registro de ingreso o egreso.
func (r *FinanceRecordRepo) Create(record *entity.FinanceRecord) error {
	query := `
		INSERT INTO finance_records (id, branch_id, type, concept, amount, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.BranchID, record.Type, record.Concept, record.Amount,
		record.Date, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert finance record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *FinanceRecordRepo) GetByID(id string) (*entity.FinanceRecord, error) {
	query := `
		SELECT id, branch_id, type, concept, amount, date, created_at, updated_at
		FROM finance_records WHERE id = $1`
	var rec entity.FinanceRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.BranchID, &rec.Type, &rec.Concept, &rec.Amount, &rec.Date,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finance record: %w", err)
	}
	return &rec, nil
}

// List lista registros filtrando opcionalmente por tipo y sucursal,
// más recientes primero por fecha del movimiento.
func (r *FinanceRecordRepo) List(recordType, branchID string, limit, offset int) ([]*entity.FinanceRecord, error) {
	query := `
		SELECT id, branch_id, type, concept, amount, date, created_at, updated_at
		FROM finance_records
		WHERE ($1 = '' OR type = $1) AND ($2 = '' OR branch_id = $2)
		ORDER BY date DESC, created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, recordType, branchID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list finance records: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinanceRecord
	for rows.Next() {
		var rec entity.FinanceRecord
		if err := rows.Scan(&rec.ID, &rec.BranchID, &rec.Type, &rec.Concept, &rec.Amount,
			&rec.Date, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan finance record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Update actualiza un registro existente.
func (r *FinanceRecordRepo) Update(record *entity.FinanceRecord) error {
	query := `
		UPDATE finance_records SET type = $2, concept = $3, amount = $4, date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.Type, record.Concept, record.Amount, record.Date, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update finance record: %w", err)
	}
	return nil
}

// Delete elimina un registro por ID.
func (r *FinanceRecordRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM finance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete finance record: %w", err)
	}
	return nil
}

// Summary agrega montos por tipo en el rango [from, to]. El agregado corre
// en la base; branchID vacío suma todas las sucursales.
func (r *FinanceRecordRepo) Summary(branchID string, from, to time.Time) (*repository.FinanceSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'ingreso'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'egreso'), 0)
		FROM finance_records
		WHERE ($1 = '' OR branch_id = $1) AND date BETWEEN $2 AND $3`
	var summary repository.FinanceSummary
	err := r.q.QueryRow(context.Background(), query, branchID, from, to).Scan(
		&summary.Income, &summary.Expense,
	)
	if err != nil {
		return nil, fmt.Errorf("finance summary: %w", err)
	}
	return &summary, nil
}
