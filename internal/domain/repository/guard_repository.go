package repository

import "github.com/jhoicas/Quickcart-api/internal/domain/entity"

// GuardRepository puerto de persistencia para guardias. Los Get devuelven
// (nil, nil) cuando no hay coincidencia. GetByGuardID compara sin distinguir
// mayúsculas y con espacios recortados.
type GuardRepository interface {
	GetByUID(uid string) (*entity.Guard, error)
	GetByGuardID(guardID string) (*entity.Guard, error)
	ExistsGuardID(guardID string) (bool, error)
	Save(guard *entity.Guard) error
	List() ([]*entity.Guard, error)
}
