package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de registro financiero.
const (
	FinanceIncome  = "ingreso"
	FinanceExpense = "egreso"
)

// FinanceRecord representa un registro de ingreso o egreso de una sucursal.
type FinanceRecord struct {
	ID        string
	BranchID  string
	Type      string // ingreso, egreso
	Concept   string
	Amount    decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
