package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Quickcart-api/internal/application/usecase"
)

// MallHandler expone el directorio de centros comerciales.
type MallHandler struct {
	uc *usecase.MallUseCase
}

// NewMallHandler construye el handler del directorio.
func NewMallHandler(uc *usecase.MallUseCase) *MallHandler {
	return &MallHandler{uc: uc}
}

// List godoc
// @Summary      Centros comerciales disponibles
// @Tags         malls
// @Produce      json
// @Success      200  {array}  entity.Mall
// @Router       /api/malls [get]
func (h *MallHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}
