package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Quickcart-api/internal/application/auth"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain"
)

// AdminAuthHandler maneja registro, login y estado del administrador del centro comercial.
type AdminAuthHandler struct {
	uc *auth.AdminUseCase
}

// NewAdminAuthHandler construye el handler de auth de administrador.
func NewAdminAuthHandler(uc *auth.AdminUseCase) *AdminAuthHandler {
	return &AdminAuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar administrador
// @Tags         auth-admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminRegisterRequest  true  "mall_name, admin_name, email, password"
// @Success      201   {object}  dto.AdminAuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/admin/register [post]
func (h *AdminAuthHandler) Register(c *fiber.Ctx) error {
	var in dto.AdminRegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterAdmin(in)
	if err != nil {
		if err == domain.ErrMissingField {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "mall_name, admin_name, email y password son requeridos"})
		}
		if err == domain.ErrAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ADMIN_EXISTS", Message: "ya existe un administrador registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión de administrador
// @Tags         auth-admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdminLoginRequest  true  "email, password"
// @Success      200   {object}  dto.AdminAuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/admin/login [post]
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	var in dto.AdminLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.LoginAdmin(in)
	if err != nil {
		if err == domain.ErrNotFound || err == domain.ErrInvalidCredentials {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión de administrador
// @Tags         auth-admin
// @Produce      json
// @Success      200   {object}  map[string]bool
// @Router       /api/auth/admin/logout [post]
func (h *AdminAuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.LogoutAdmin(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// Exists godoc
// @Summary      ¿Hay un administrador registrado?
// @Tags         auth-admin
// @Produce      json
// @Success      200   {object}  map[string]bool
// @Router       /api/auth/admin/exists [get]
func (h *AdminAuthHandler) Exists(c *fiber.Ctx) error {
	exists, err := h.uc.HasRegisteredAdmin()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"exists": exists})
}

// Status godoc
// @Summary      Estado de administrador para un UID
// @Tags         auth-admin
// @Produce      json
// @Param        uid   path  string  true  "UID de la cuenta"
// @Success      200   {object}  dto.AdminStatusResponse
// @Router       /api/auth/admin/status/{uid} [get]
func (h *AdminAuthHandler) Status(c *fiber.Ctx) error {
	uid := c.Params("uid")
	out, err := h.uc.CheckAdminStatus(uid)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
