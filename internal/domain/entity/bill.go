package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago y verificación de una factura.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"

	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationFlagged  = "flagged"
)

// Bill factura digital: instantánea congelada del carrito en el momento del
// pago. Las líneas y los totales se copian, no se recalculan después.
type Bill struct {
	ID                 string          `json:"id"` // BILL-<año>-<seq>
	CustomerUID        string          `json:"customerUid"`
	MallName           string          `json:"mallName"`
	Items              []CartItem      `json:"items"`
	TotalItems         int             `json:"totalItems"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	TotalTax           decimal.Decimal `json:"totalTax"`
	Total              decimal.Decimal `json:"total"`
	PaymentStatus      string          `json:"paymentStatus"`
	VerificationStatus string          `json:"verificationStatus"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// Resultados de verificación en puerta de salida.
const (
	VerdictAllowed = "allowed"
	VerdictFlagged = "flagged"
)

// VerificationRecord registro de una verificación en puerta realizada por un
// guardia sobre una factura.
type VerificationRecord struct {
	ID            string          `json:"id"`
	BillID        string          `json:"billId"`
	GuardUID      string          `json:"guardUid"`
	Status        string          `json:"status"` // allowed, flagged
	Note          string          `json:"note,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
	ItemCount     int             `json:"itemCount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentStatus string          `json:"paymentStatus"` // paid, unpaid
}

// DashboardStats agregados para el panel del administrador.
type DashboardStats struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TransactionCount int             `json:"transactionCount"`
	ActiveUsers      int             `json:"activeUsers"`
	PeakHour         string          `json:"peakHour"`
}
