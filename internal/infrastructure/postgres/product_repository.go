package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador del catálogo.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, barcode, name, price, tax, category, shop_id, shop_name`

// GetByID obtiene un producto por id, (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.queryOne(query, id)
}

// GetByBarcode obtiene un producto por código de barras, (nil, nil) si no existe.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.queryOne(query, barcode)
}

// List lista el catálogo paginado por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Save inserta o reemplaza un producto (el catálogo es dato de referencia:
// solo lo toca el sembrado).
func (r *ProductRepo) Save(product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (id, barcode, name, price, tax, category, shop_id, shop_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			barcode = EXCLUDED.barcode, name = EXCLUDED.name, price = EXCLUDED.price,
			tax = EXCLUDED.tax, category = EXCLUDED.category,
			shop_id = EXCLUDED.shop_id, shop_name = EXCLUDED.shop_name`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Barcode, product.Name, product.Price, product.Tax,
		product.Category, product.ShopID, product.ShopName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) queryOne(query string, arg interface{}) (*entity.Product, error) {
	row := r.pool.QueryRow(context.Background(), query, arg)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Barcode, &p.Name, &p.Price, &p.Tax, &p.Category, &p.ShopID, &p.ShopName); err != nil {
		return nil, err
	}
	return &p, nil
}
