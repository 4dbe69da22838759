package usecase

import "github.com/jhoicas/Quickcart-api/internal/domain/entity"

// MallUseCase directorio de centros comerciales. Datos de referencia fijos de
// la demo; no hay alta ni edición de centros.
type MallUseCase struct{}

// NewMallUseCase construye el caso de uso del directorio.
func NewMallUseCase() *MallUseCase {
	return &MallUseCase{}
}

// List devuelve los centros comerciales disponibles.
func (uc *MallUseCase) List() []entity.Mall {
	return []entity.Mall{
		{ID: "mall-001", Name: "Phoenix MarketCity", Location: "Whitefield, Bangalore", OperatingHours: "10:00 AM - 10:00 PM", ShopCount: 245, GateCount: 4},
		{ID: "mall-002", Name: "Orion Mall", Location: "Brigade Gateway, Bangalore", OperatingHours: "10:00 AM - 11:00 PM", ShopCount: 180, GateCount: 3},
		{ID: "mall-003", Name: "Forum Mall", Location: "Koramangala, Bangalore", OperatingHours: "10:00 AM - 10:00 PM", ShopCount: 120, GateCount: 2},
	}
}
