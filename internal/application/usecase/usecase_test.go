package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Quickcart-api/internal/application/usecase"
	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) Save(product *entity.Product) error {
	f.products = append(f.products, product)
	return nil
}

type statsOnlyBillRepo struct {
	stats *entity.DashboardStats
}

func (f *statsOnlyBillRepo) Save(*entity.Bill) error                      { return nil }
func (f *statsOnlyBillRepo) GetByID(string) (*entity.Bill, error)         { return nil, nil }
func (f *statsOnlyBillRepo) SetVerification(string, string) error         { return nil }
func (f *statsOnlyBillRepo) SaveVerification(*entity.VerificationRecord) error {
	return nil
}
func (f *statsOnlyBillRepo) ListByCustomer(string, int, int) ([]*entity.Bill, error) {
	return nil, nil
}
func (f *statsOnlyBillRepo) ListVerifications(int, int) ([]*entity.VerificationRecord, error) {
	return nil, nil
}
func (f *statsOnlyBillRepo) Stats() (*entity.DashboardStats, error) { return f.stats, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestScan_DevuelveElProductoDelCodigo(t *testing.T) {
	repo := &fakeProductRepo{}
	require.NoError(t, repo.Save(&entity.Product{ID: "prod-001", Barcode: "8901234567890", Name: "Premium Basmati Rice"}))
	uc := usecase.NewProductUseCase(repo)

	p, err := uc.Scan("8901234567890")
	require.NoError(t, err)
	assert.Equal(t, "prod-001", p.ID)
}

func TestScan_CodigoDesconocidoDevuelveNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.Scan("0000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_DesconocidoDevuelveNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{})

	_, err := uc.GetByID("prod-999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DashboardUseCase — cifras de demo como respaldo
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_SinTransaccionesDevuelveCifrasDemo(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&statsOnlyBillRepo{stats: &entity.DashboardStats{}})

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(1547890)))
	assert.Equal(t, 3456, stats.TransactionCount)
	assert.Equal(t, 12890, stats.ActiveUsers)
	assert.Equal(t, "6:00 PM - 8:00 PM", stats.PeakHour)
}

func TestStats_ConDatosRealesLosRespeta(t *testing.T) {
	real := &entity.DashboardStats{
		TotalRevenue:     decimal.NewFromInt(2500),
		TransactionCount: 4,
		ActiveUsers:      3,
	}
	uc := usecase.NewDashboardUseCase(&statsOnlyBillRepo{stats: real})

	stats, err := uc.Stats()
	require.NoError(t, err)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, 4, stats.TransactionCount)
	assert.Equal(t, "6:00 PM - 8:00 PM", stats.PeakHour, "sin hora pico calculada se usa la de demo")
}
