package billing

import (
	"context"

	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
)

// BillPDFGenerator genera la representación gráfica (PDF) de una factura
// digital, incluido el código QR que escanea el guardia en la puerta.
type BillPDFGenerator interface {
	GenerateBillPDF(ctx context.Context, bill *entity.Bill) ([]byte, error)
}
