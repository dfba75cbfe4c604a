package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
)

// FinanceSummary totales de ingresos y egresos en un rango de fechas.
type FinanceSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// FinanceRecordRepository define el puerto de persistencia para registros
// de ingresos y egresos.
type FinanceRecordRepository interface {
	Create(record *entity.FinanceRecord) error
	GetByID(id string) (*entity.FinanceRecord, error)
	// List filtra opcionalmente por tipo (ingreso|egreso, vacío = ambos) y sucursal.
	List(recordType, branchID string, limit, offset int) ([]*entity.FinanceRecord, error)
	Update(record *entity.FinanceRecord) error
	Delete(id string) error
	// Summary agrega los montos por tipo en el rango [from, to].
	Summary(branchID string, from, to time.Time) (*FinanceSummary, error)
}
