package repository

import "github.com/jhoicas/Quickcart-api/internal/domain/entity"

// AdminRepository puerto de persistencia para la cuenta de administrador
// (singleton: como máximo una almacenada). Get devuelve (nil, nil) si no hay
// cuenta registrada.
type AdminRepository interface {
	Get() (*entity.Admin, error)
	Save(admin *entity.Admin) error
	Exists() (bool, error)
}
