package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/materiales-pro/internal/application/dto"
	"github.com/tu-usuario/materiales-pro/internal/domain"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, supplierRepo: supplierRepo}
}

// Create registra un producto. El código debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validPrices(in); err != nil {
		return nil, err
	}
	existing, err := uc.productRepo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		Description:   in.Description,
		Format:        in.Format,
		SupplierID:    in.SupplierID,
		PricePiece:    in.PricePiece,
		PricePieceVAT: in.PricePieceVAT,
		PriceBox:      in.PriceBox,
		PriceBoxVAT:   in.PriceBoxVAT,
		PriceM2:       in.PriceM2,
		PriceM2VAT:    in.PriceM2VAT,
		ImageURL:      in.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos; con term busca por nombre insensible a tildes
// y mayúsculas.
func (uc *ProductUseCase) List(term string, limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var list []*entity.Product
	var err error
	if term != "" {
		list, err = uc.productRepo.SearchByName(term, limit, offset)
	} else {
		list, err = uc.productRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto existente. Un cambio de código verifica que
// el nuevo código no esté tomado por otro producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validPrices(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != product.Code {
		other, err := uc.productRepo.GetByCode(in.Code)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	product.Code = in.Code
	product.Name = in.Name
	product.Description = in.Description
	product.Format = in.Format
	product.SupplierID = in.SupplierID
	product.PricePiece = in.PricePiece
	product.PricePieceVAT = in.PricePieceVAT
	product.PriceBox = in.PriceBox
	product.PriceBoxVAT = in.PriceBoxVAT
	product.PriceM2 = in.PriceM2
	product.PriceM2VAT = in.PriceM2VAT
	product.ImageURL = in.ImageURL
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

// validPrices rechaza precios negativos en cualquier base.
func validPrices(in dto.CreateProductRequest) error {
	for _, nd := range []decimal.NullDecimal{
		in.PricePiece, in.PricePieceVAT,
		in.PriceBox, in.PriceBoxVAT,
		in.PriceM2, in.PriceM2VAT,
	} {
		if nd.Valid && nd.Decimal.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		Format:        p.Format,
		SupplierID:    p.SupplierID,
		ImageURL:      p.ImageURL,
		PricePiece:    p.PricePiece,
		PricePieceVAT: p.PricePieceVAT,
		PriceBox:      p.PriceBox,
		PriceBoxVAT:   p.PriceBoxVAT,
		PriceM2:       p.PriceM2,
		PriceM2VAT:    p.PriceM2VAT,
	}
}
