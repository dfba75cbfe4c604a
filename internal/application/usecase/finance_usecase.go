package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/materiales-pro/internal/application/dto"
	"github.com/tu-usuario/materiales-pro/internal/domain"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
)

const financeDateLayout = "2006-01-02"

// FinanceUseCase casos de uso de registros de ingresos y egresos.
type FinanceUseCase struct {
	recordRepo repository.FinanceRecordRepository
	branchRepo repository.BranchRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(recordRepo repository.FinanceRecordRepository, branchRepo repository.BranchRepository) *FinanceUseCase {
	return &FinanceUseCase{recordRepo: recordRepo, branchRepo: branchRepo}
}

// Create registra un ingreso o egreso en una sucursal.
func (uc *FinanceUseCase) Create(in dto.CreateFinanceRecordRequest) (*dto.FinanceRecordResponse, error) {
	if in.BranchID == "" || in.Concept == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.FinanceIncome && in.Type != entity.FinanceExpense {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(financeDateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(in.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	record := &entity.FinanceRecord{
		ID:        uuid.New().String(),
		BranchID:  in.BranchID,
		Type:      in.Type,
		Concept:   in.Concept,
		Amount:    in.Amount,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.recordRepo.Create(record); err != nil {
		return nil, err
	}
	return toFinanceResponse(record), nil
}

// GetByID obtiene un registro.
func (uc *FinanceUseCase) GetByID(id string) (*dto.FinanceRecordResponse, error) {
	record, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return toFinanceResponse(record), nil
}

// List lista registros filtrando opcionalmente por tipo y sucursal.
func (uc *FinanceUseCase) List(recordType, branchID string, limit, offset int) ([]*dto.FinanceRecordResponse, error) {
	if recordType != "" && recordType != entity.FinanceIncome && recordType != entity.FinanceExpense {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.recordRepo.List(recordType, branchID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FinanceRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toFinanceResponse(r))
	}
	return out, nil
}

// Update modifica un registro existente.
func (uc *FinanceUseCase) Update(id string, in dto.UpdateFinanceRecordRequest) (*dto.FinanceRecordResponse, error) {
	if in.Type != entity.FinanceIncome && in.Type != entity.FinanceExpense {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() || in.Concept == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse(financeDateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	record, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	record.Type = in.Type
	record.Concept = in.Concept
	record.Amount = in.Amount
	record.Date = date
	record.UpdatedAt = time.Now()
	if err := uc.recordRepo.Update(record); err != nil {
		return nil, err
	}
	return toFinanceResponse(record), nil
}

// Delete elimina un registro.
func (uc *FinanceUseCase) Delete(id string) error {
	record, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	return uc.recordRepo.Delete(id)
}

// Summary calcula ingresos, egresos y balance en el rango [from, to].
// Fechas vacías usan el mes en curso.
func (uc *FinanceUseCase) Summary(branchID, fromStr, toStr string) (*dto.FinanceSummaryResponse, error) {
	var from, to time.Time
	var err error
	if fromStr == "" && toStr == "" {
		now := time.Now()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, -1)
	} else {
		from, err = time.Parse(financeDateLayout, fromStr)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		to, err = time.Parse(financeDateLayout, toStr)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		if to.Before(from) {
			return nil, domain.ErrInvalidInput
		}
	}
	summary, err := uc.recordRepo.Summary(branchID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.FinanceSummaryResponse{
		From:    from.Format(financeDateLayout),
		To:      to.Format(financeDateLayout),
		Income:  summary.Income,
		Expense: summary.Expense,
		Balance: summary.Income.Sub(summary.Expense),
	}, nil
}

func toFinanceResponse(r *entity.FinanceRecord) *dto.FinanceRecordResponse {
	return &dto.FinanceRecordResponse{
		ID:       r.ID,
		BranchID: r.BranchID,
		Type:     r.Type,
		Concept:  r.Concept,
		Amount:   r.Amount,
		Date:     r.Date.Format(financeDateLayout),
	}
}
