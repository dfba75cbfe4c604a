package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/materiales-pro/internal/domain"
	"github.com/tu-usuario/materiales-pro/internal/domain/entity"
	"github.com/tu-usuario/materiales-pro/internal/domain/repository"
	"github.com/tu-usuario/materiales-pro/pkg/textutil"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, code, name, name_normalized, description, format, supplier_id,
	price_piece, price_piece_vat, price_box, price_box_vat, price_m2, price_m2_vat,
	image_url, created_at, updated_at`

// Create persiste un nuevo producto. El código es único.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, textutil.NormalizeSearch(product.Name),
		product.Description, product.Format, product.SupplierID,
		product.PricePiece, product.PricePieceVAT, product.PriceBox, product.PriceBoxVAT,
		product.PriceM2, product.PriceM2VAT,
		product.ImageURL, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.getOne(query, id)
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1`
	return r.getOne(query, code)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	var normalized string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Code, &p.Name, &normalized, &p.Description, &p.Format, &p.SupplierID,
		&p.PricePiece, &p.PricePieceVAT, &p.PriceBox, &p.PriceBoxVAT, &p.PriceM2, &p.PriceM2VAT,
		&p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación, alfabético por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name_normalized LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// SearchByName busca productos por nombre normalizado (subcadena, sin tildes).
func (r *ProductRepo) SearchByName(term string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE name_normalized LIKE '%' || $1 || '%'
		ORDER BY name_normalized LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, textutil.NormalizeSearch(term), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Update actualiza un producto existente, incluidas las seis bases de precio.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET code = $2, name = $3, name_normalized = $4, description = $5, format = $6,
			supplier_id = $7, price_piece = $8, price_piece_vat = $9, price_box = $10, price_box_vat = $11,
			price_m2 = $12, price_m2_vat = $13, image_url = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Name, textutil.NormalizeSearch(product.Name),
		product.Description, product.Format, product.SupplierID,
		product.PricePiece, product.PricePieceVAT, product.PriceBox, product.PriceBoxVAT,
		product.PriceM2, product.PriceM2VAT, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var normalized string
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &normalized, &p.Description, &p.Format, &p.SupplierID,
			&p.PricePiece, &p.PricePieceVAT, &p.PriceBox, &p.PriceBoxVAT, &p.PriceM2, &p.PriceM2VAT,
			&p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
