package localstore

import (
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminStore)(nil)

// AdminStore adaptador del namespace admin.json (cuenta singleton).
type AdminStore struct {
	s *Store
}

// Get devuelve la cuenta almacenada o (nil, nil) si no hay ninguna.
func (a *AdminStore) Get() (*entity.Admin, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	var admin entity.Admin
	ok, err := a.s.read(adminFile, &admin)
	if err != nil || !ok {
		return nil, err
	}
	return &admin, nil
}

// Save persiste la cuenta (reemplazo completo del namespace).
func (a *AdminStore) Save(admin *entity.Admin) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return a.s.write(adminFile, admin)
}

// Exists indica si hay una cuenta registrada.
func (a *AdminStore) Exists() (bool, error) {
	admin, err := a.Get()
	return admin != nil, err
}
