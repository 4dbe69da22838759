package repository

import "github.com/jhoicas/Quickcart-api/internal/domain/entity"

// ProductRepository puerto de lectura del catálogo de productos (DIP).
// Los Get devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Save(product *entity.Product) error
}
