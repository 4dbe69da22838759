package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura digital.
type PDFUseCase struct {
	bills     repository.BillRepository
	generator BillPDFGenerator
}

// NewPDFUseCase construye el caso de uso de PDF.
func NewPDFUseCase(bills repository.BillRepository, generator BillPDFGenerator) *PDFUseCase {
	return &PDFUseCase{bills: bills, generator: generator}
}

// DownloadBillPDF carga la factura y genera su PDF con código QR.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
func (uc *PDFUseCase) DownloadBillPDF(ctx context.Context, billID string) (pdfBytes []byte, filename string, err error) {
	bill, err := uc.bills.GetByID(billID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if bill == nil {
		return nil, "", domain.ErrNotFound
	}
	pdfBytes, err = uc.generator.GenerateBillPDF(ctx, bill)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", bill.ID), nil
}
