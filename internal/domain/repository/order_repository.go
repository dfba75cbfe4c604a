package repository

import (
	"time"

	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
)

// SalesOrderRepository define el puerto de persistencia para SalesOrder y sus partidas.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	CreateLine(line *entity.SalesOrderLine) error
	GetByID(id string) (*entity.SalesOrder, error)
	// GetLines devuelve las partidas ordenadas por posición.
	GetLines(orderID string) ([]*entity.SalesOrderLine, error)
	List(limit, offset int) ([]*entity.SalesOrder, error)
	UpdateStatus(id, status, comments string, updatedAt time.Time) error
}
