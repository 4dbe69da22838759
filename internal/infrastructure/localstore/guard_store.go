package localstore

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

var _ repository.GuardRepository = (*GuardStore)(nil)

// GuardStore adaptador del namespace guards.json: colección de guardias
// indexada por uid, al estilo de una colección de documentos.
type GuardStore struct {
	s *Store
}

// Guardia de demostración sembrado cuando el almacén está vacío.
const (
	demoGuardID   = "GUARD-DEMO-001"
	demoGuardName = "Demo Guard"
	demoGuardOTP  = "123456"
)

func (g *GuardStore) load() (map[string]*entity.Guard, error) {
	guards := make(map[string]*entity.Guard)
	if _, err := g.s.read(guardsFile, &guards); err != nil {
		return nil, err
	}
	return guards, nil
}

// GetByUID devuelve el guardia por uid interno o (nil, nil).
func (g *GuardStore) GetByUID(uid string) (*entity.Guard, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	guards, err := g.load()
	if err != nil {
		return nil, err
	}
	return guards[uid], nil
}

// GetByGuardID busca por guard ID visible, sin distinguir mayúsculas y con
// espacios recortados. Devuelve (nil, nil) sin coincidencia.
func (g *GuardStore) GetByGuardID(guardID string) (*entity.Guard, error) {
	needle := strings.ToUpper(strings.TrimSpace(guardID))
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	guards, err := g.load()
	if err != nil {
		return nil, err
	}
	for _, guard := range guards {
		if strings.ToUpper(strings.TrimSpace(guard.GuardID)) == needle {
			return guard, nil
		}
	}
	return nil, nil
}

// ExistsGuardID chequeo de unicidad del guard ID visible.
func (g *GuardStore) ExistsGuardID(guardID string) (bool, error) {
	guard, err := g.GetByGuardID(guardID)
	return guard != nil, err
}

// Save inserta o reemplaza el guardia (reemplazo completo del documento).
func (g *GuardStore) Save(guard *entity.Guard) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	guards, err := g.load()
	if err != nil {
		return err
	}
	guards[guard.UID] = guard
	return g.s.write(guardsFile, guards)
}

// List devuelve los guardias ordenados por fecha de alta.
func (g *GuardStore) List() ([]*entity.Guard, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	guards, err := g.load()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Guard, 0, len(guards))
	for _, guard := range guards {
		out = append(out, guard)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// SeedDemoGuard siembra el guardia de demostración si el namespace está vacío,
// para que el flujo de puerta sea probable desde una instalación limpia.
func (g *GuardStore) SeedDemoGuard() error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()
	guards, err := g.load()
	if err != nil {
		return err
	}
	if len(guards) > 0 {
		return nil
	}
	demo := &entity.Guard{
		UID:       uuid.New().String(),
		GuardID:   demoGuardID,
		Name:      demoGuardName,
		Role:      entity.RoleGuard,
		Status:    entity.GuardStatusActive,
		CreatedAt: time.Now(),
		OTPSecret: demoGuardOTP,
	}
	guards[demo.UID] = demo
	return g.s.write(guardsFile, guards)
}
