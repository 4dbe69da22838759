package repository

import "github.com/jhoicas/Quickcart-api/internal/domain/entity"

// BillRepository puerto de persistencia de facturas y verificaciones en puerta.
// GetByID devuelve (nil, nil) si la factura no existe.
type BillRepository interface {
	Save(bill *entity.Bill) error
	GetByID(id string) (*entity.Bill, error)
	ListByCustomer(customerUID string, limit, offset int) ([]*entity.Bill, error)
	SetVerification(billID, verificationStatus string) error
	SaveVerification(record *entity.VerificationRecord) error
	ListVerifications(limit, offset int) ([]*entity.VerificationRecord, error)
	Stats() (*entity.DashboardStats, error)
}
