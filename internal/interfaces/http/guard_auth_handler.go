package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Quickcart-api/internal/application/auth"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain"
)

// GuardAuthHandler maneja registro y login de guardias de salida.
type GuardAuthHandler struct {
	uc *auth.GuardUseCase
}

// NewGuardAuthHandler construye el handler de auth de guardias.
func NewGuardAuthHandler(uc *auth.GuardUseCase) *GuardAuthHandler {
	return &GuardAuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar guardia (genera guard ID único)
// @Tags         auth-guard
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GuardRegisterRequest  true  "name, email"
// @Success      201   {object}  dto.GuardAuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/guard/register [post]
func (h *GuardAuthHandler) Register(c *fiber.Ctx) error {
	var in dto.GuardRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterGuardWithEmail(in)
	if err != nil {
		if err == domain.ErrMissingField {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
		}
		if err == domain.ErrIDGenerationExhausted {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ID_EXHAUSTED", Message: "no se pudo generar un guard ID único, reintenta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión de guardia con guard ID + OTP
// @Tags         auth-guard
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GuardLoginRequest  true  "guard_id, otp"
// @Success      200   {object}  dto.GuardAuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/guard/login [post]
func (h *GuardAuthHandler) Login(c *fiber.Ctx) error {
	var in dto.GuardLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.GuardID == "" || in.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "guard_id y otp son requeridos"})
	}
	out, err := h.uc.LoginGuard(in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "GUARD_NOT_FOUND", Message: "guard ID no registrado"})
		}
		if err == domain.ErrInactiveAccount {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INACTIVE", Message: "la cuenta del guardia está inactiva"})
		}
		if err == domain.ErrInvalidOTP {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_OTP", Message: "código OTP incorrecto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Estado de guardia para un UID
// @Tags         auth-guard
// @Produce      json
// @Param        uid   path  string  true  "UID de la cuenta"
// @Success      200   {object}  dto.GuardStatusResponse
// @Router       /api/auth/guard/status/{uid} [get]
func (h *GuardAuthHandler) Status(c *fiber.Ctx) error {
	uid := c.Params("uid")
	out, err := h.uc.CheckGuardStatus(uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar guardias registrados (solo admin)
// @Tags         auth-guard
// @Produce      json
// @Success      200   {array}  dto.GuardResponse
// @Router       /api/guards [get]
func (h *GuardAuthHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListGuards()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
