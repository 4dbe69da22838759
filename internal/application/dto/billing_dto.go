package dto

import "github.com/jhoicas/Quickcart-api/internal/domain/entity"

// VerifyBillRequest verificación en puerta de salida.
type VerifyBillRequest struct {
	Note string `json:"note,omitempty"`
}

// VerifyBillResponse veredicto del guardia y registro generado.
type VerifyBillResponse struct {
	Success bool                       `json:"success"`
	Status  string                     `json:"status"` // allowed, flagged
	Record  *entity.VerificationRecord `json:"record"`
}
