package usecase

import (
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase agregados para el panel del administrador. Con el almacén
// vacío devuelve las cifras de demostración para que el panel no quede en
// blanco en una instalación nueva.
type DashboardUseCase struct {
	bills repository.BillRepository
}

// NewDashboardUseCase construye el caso de uso del panel.
func NewDashboardUseCase(bills repository.BillRepository) *DashboardUseCase {
	return &DashboardUseCase{bills: bills}
}

// Stats devuelve ingresos, número de transacciones y usuarios activos.
func (uc *DashboardUseCase) Stats() (*entity.DashboardStats, error) {
	stats, err := uc.bills.Stats()
	if err != nil {
		return nil, err
	}
	if stats == nil || stats.TransactionCount == 0 {
		return demoStats(), nil
	}
	if stats.PeakHour == "" {
		stats.PeakHour = demoPeakHour
	}
	return stats, nil
}

const demoPeakHour = "6:00 PM - 8:00 PM"

func demoStats() *entity.DashboardStats {
	return &entity.DashboardStats{
		TotalRevenue:     decimal.NewFromInt(1547890),
		TransactionCount: 3456,
		ActiveUsers:      12890,
		PeakHour:         demoPeakHour,
	}
}
