package dto

import "github.com/shopspring/decimal"

// CreateFinanceRecordRequest body para POST /api/registros.
type CreateFinanceRecordRequest struct {
	BranchID string          `json:"sucursal_id"`
	Type     string          `json:"tipo"` // ingreso, egreso
	Concept  string          `json:"concepto"`
	Amount   decimal.Decimal `json:"monto"`
	Date     string          `json:"fecha"` // YYYY-MM-DD
}

// UpdateFinanceRecordRequest body para PUT /api/registros/:id.
type UpdateFinanceRecordRequest = CreateFinanceRecordRequest

// FinanceRecordResponse registro en respuestas.
type FinanceRecordResponse struct {
	ID       string          `json:"id"`
	BranchID string          `json:"sucursal_id"`
	Type     string          `json:"tipo"`
	Concept  string          `json:"concepto"`
	Amount   decimal.Decimal `json:"monto"`
	Date     string          `json:"fecha"`
}

// FinanceSummaryResponse totales por tipo en un rango de fechas.
type FinanceSummaryResponse struct {
	From    string          `json:"desde"`
	To      string          `json:"hasta"`
	Income  decimal.Decimal `json:"ingresos"`
	Expense decimal.Decimal `json:"egresos"`
	Balance decimal.Decimal `json:"balance"`
}
