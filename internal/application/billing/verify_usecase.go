package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

// VerifyUseCase verificación de facturas en puerta de salida por un guardia.
type VerifyUseCase struct {
	bills repository.BillRepository
}

// NewVerifyUseCase construye el caso de uso de verificación.
func NewVerifyUseCase(bills repository.BillRepository) *VerifyUseCase {
	return &VerifyUseCase{bills: bills}
}

// VerifyBill evalúa la factura escaneada: pagada -> verified / allowed; sin
// pagar -> flagged. Siempre deja un VerificationRecord con el veredicto.
// Factura desconocida devuelve ErrNotFound.
func (uc *VerifyUseCase) VerifyBill(guardUID, billID, note string) (*dto.VerifyBillResponse, error) {
	bill, err := uc.bills.GetByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}

	verdict := entity.VerdictAllowed
	verification := entity.VerificationVerified
	payment := "paid"
	if bill.PaymentStatus != entity.PaymentPaid {
		verdict = entity.VerdictFlagged
		verification = entity.VerificationFlagged
		payment = "unpaid"
		if note == "" {
			note = "Payment pending"
		}
	}

	if err := uc.bills.SetVerification(bill.ID, verification); err != nil {
		return nil, fmt.Errorf("actualizar verificación: %w", err)
	}
	record := &entity.VerificationRecord{
		ID:            uuid.New().String(),
		BillID:        bill.ID,
		GuardUID:      guardUID,
		Status:        verdict,
		Note:          note,
		Timestamp:     time.Now(),
		ItemCount:     bill.TotalItems,
		TotalAmount:   bill.Total,
		PaymentStatus: payment,
	}
	if err := uc.bills.SaveVerification(record); err != nil {
		return nil, fmt.Errorf("guardar registro de verificación: %w", err)
	}
	return &dto.VerifyBillResponse{Success: true, Status: verdict, Record: record}, nil
}

// ListVerifications historial de verificaciones en puerta.
func (uc *VerifyUseCase) ListVerifications(limit, offset int) ([]*entity.VerificationRecord, error) {
	return uc.bills.ListVerifications(limit, offset)
}
