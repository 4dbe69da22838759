package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Quickcart-api/internal/application/billing"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain"
)

// BillHandler maneja checkout, consulta de facturas, PDF y verificación en puerta.
type BillHandler struct {
	checkout *billing.CheckoutUseCase
	verify   *billing.VerifyUseCase
	pdf      *billing.PDFUseCase
}

// NewBillHandler construye el handler de facturas.
func NewBillHandler(checkout *billing.CheckoutUseCase, verify *billing.VerifyUseCase, pdf *billing.PDFUseCase) *BillHandler {
	return &BillHandler{checkout: checkout, verify: verify, pdf: pdf}
}

// Checkout godoc
// @Summary      Pagar el carrito y congelar la factura
// @Tags         bills
// @Produce      json
// @Success      201  {object}  entity.Bill
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/bills/checkout [post]
func (h *BillHandler) Checkout(c *fiber.Ctx) error {
	bill, err := h.checkout.Checkout(GetUserID(c))
	if err != nil {
		if err == domain.ErrEmptyCart {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(bill)
}

// GetByID godoc
// @Summary      Factura por ID
// @Tags         bills
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  entity.Bill
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id} [get]
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	bill, err := h.checkout.GetBill(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(bill)
}

// ListMine godoc
// @Summary      Facturas del comprador autenticado
// @Tags         bills
// @Produce      json
// @Param        limit   query  int  false  "máximo por página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200     {array}  entity.Bill
// @Router       /api/bills [get]
func (h *BillHandler) ListMine(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	bills, err := h.checkout.ListBills(GetUserID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(bills)
}

// DownloadPDF godoc
// @Summary      Descargar la factura en PDF con QR de verificación
// @Tags         bills
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bills/{id}/pdf [get]
func (h *BillHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadBillPDF(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(pdfBytes)
}

// Verify godoc
// @Summary      Verificar una factura en la puerta de salida (solo guardias)
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la factura"
// @Param        body  body  dto.VerifyBillRequest  false  "note"
// @Success      200   {object}  dto.VerifyBillResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bills/{id}/verify [post]
func (h *BillHandler) Verify(c *fiber.Ctx) error {
	var in dto.VerifyBillRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	out, err := h.verify.VerifyBill(GetUserID(c), c.Params("id"), in.Note)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListVerifications godoc
// @Summary      Historial de verificaciones (guardias y admin)
// @Tags         bills
// @Produce      json
// @Param        limit   query  int  false  "máximo por página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200     {array}  entity.VerificationRecord
// @Router       /api/verifications [get]
func (h *BillHandler) ListVerifications(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	records, err := h.verify.ListVerifications(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(records)
}
