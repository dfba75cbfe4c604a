package repository

import (
	"time"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
)

// QuotationRepository define el puerto de persistencia para Quotation y sus partidas.
// La cabecera es inmutable después de crear; solo el estado puede cambiar
// (cancelación).
type QuotationRepository interface {
	Create(quotation *entity.Quotation) error
	CreateLine(line *entity.QuotationLine) error
	GetByID(id string) (*entity.Quotation, error)
	// GetLines devuelve las partidas ordenadas por posición.
	GetLines(quotationID string) ([]*entity.QuotationLine, error)
	List(limit, offset int) ([]*entity.Quotation, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
}
