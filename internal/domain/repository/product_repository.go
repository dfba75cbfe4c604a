package repository

import "github.com/tu-usuario/materiales-pro/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	// SearchByName busca por nombre normalizado (sin tildes, minúsculas).
	SearchByName(term string, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
