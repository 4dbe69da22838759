package billing

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jhoicas/Quickcart-api/internal/application/cart"
	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

const billIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// CheckoutUseCase convierte el carrito de un cliente en una factura digital.
// El pago es simulado: la factura nace con estado paid (no hay pasarela real).
type CheckoutUseCase struct {
	carts    *cart.Service
	bills    repository.BillRepository
	mallName string
}

// NewCheckoutUseCase construye el caso de uso de checkout.
func NewCheckoutUseCase(carts *cart.Service, bills repository.BillRepository, mallName string) *CheckoutUseCase {
	return &CheckoutUseCase{carts: carts, bills: bills, mallName: mallName}
}

// Checkout congela el carrito del cliente en una factura (las líneas y totales
// se copian tal cual, no se recalculan después), la persiste y vacía el
// carrito. Con el carrito vacío devuelve ErrEmptyCart.
func (uc *CheckoutUseCase) Checkout(customerUID string) (*entity.Bill, error) {
	snapshot := uc.carts.Snapshot(customerUID)
	if len(snapshot.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	now := time.Now()
	bill := &entity.Bill{
		ID:                 newBillID(now),
		CustomerUID:        customerUID,
		MallName:           uc.mallName,
		Items:              snapshot.Items,
		TotalItems:         snapshot.TotalItems,
		Subtotal:           snapshot.Subtotal,
		TotalTax:           snapshot.TotalTax,
		Total:              snapshot.Total,
		PaymentStatus:      entity.PaymentPaid,
		VerificationStatus: entity.VerificationPending,
		CreatedAt:          now,
	}
	if err := uc.bills.Save(bill); err != nil {
		return nil, fmt.Errorf("guardar factura: %w", err)
	}
	uc.carts.ClearCart(customerUID)
	return bill, nil
}

// GetBill devuelve la factura por id, o ErrNotFound si no existe.
func (uc *CheckoutUseCase) GetBill(billID string) (*entity.Bill, error) {
	bill, err := uc.bills.GetByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	return bill, nil
}

// ListBills historial de facturas del cliente.
func (uc *CheckoutUseCase) ListBills(customerUID string, limit, offset int) ([]*entity.Bill, error) {
	return uc.bills.ListByCustomer(customerUID, limit, offset)
}

// newBillID genera un id presentable BILL-<año>-<rand6>. El sufijo aleatorio
// evita coordinar una secuencia entre backends.
func newBillID(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = billIDAlphabet[rand.IntN(len(billIDAlphabet))]
	}
	return strings.ToUpper(fmt.Sprintf("BILL-%d-%s", now.Year(), suffix))
}
