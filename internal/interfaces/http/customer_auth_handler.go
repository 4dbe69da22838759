package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Quickcart-api/internal/application/auth"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain"
)

// CustomerAuthHandler maneja la sesión ligera de compradores y la sesión actual.
type CustomerAuthHandler struct {
	uc *auth.SessionUseCase
}

// NewCustomerAuthHandler construye el handler de sesión de compradores.
func NewCustomerAuthHandler(uc *auth.SessionUseCase) *CustomerAuthHandler {
	return &CustomerAuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión de comprador (solo teléfono)
// @Tags         auth-customer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerLoginRequest  true  "phone"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/customer/login [post]
func (h *CustomerAuthHandler) Login(c *fiber.Ctx) error {
	var in dto.CustomerLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.LoginCustomer(in)
	if err != nil {
		if err == domain.ErrMissingField {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "phone es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Session godoc
// @Summary      Sesión actual con rol resuelto
// @Tags         auth-customer
// @Produce      json
// @Success      200   {object}  dto.SessionResponse
// @Router       /api/auth/session [get]
func (h *CustomerAuthHandler) Session(c *fiber.Ctx) error {
	out, err := h.uc.CurrentSession()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar la sesión actual
// @Tags         auth-customer
// @Produce      json
// @Success      200   {object}  map[string]bool
// @Router       /api/auth/logout [post]
func (h *CustomerAuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.ClearSession(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
