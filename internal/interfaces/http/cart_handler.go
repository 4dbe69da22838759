package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Quickcart-api/internal/application/cart"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/application/usecase"
	"github.com/jhoicas/Quickcart-api/internal/domain"
)

// CartHandler maneja el carrito en memoria del comprador autenticado.
type CartHandler struct {
	carts    *cart.Service
	products *usecase.ProductUseCase
}

// NewCartHandler construye el handler de carrito.
func NewCartHandler(carts *cart.Service, products *usecase.ProductUseCase) *CartHandler {
	return &CartHandler{carts: carts, products: products}
}

// Get godoc
// @Summary      Carrito actual con totales
// @Tags         cart
// @Produce      json
// @Success      200  {object}  entity.Cart
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.carts.Snapshot(GetUserID(c)))
}

// Add godoc
// @Summary      Añadir producto al carrito (fusiona cantidades)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddToCartRequest  true  "product_id, quantity"
// @Success      200   {object}  entity.Cart
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	product, err := h.products.GetByID(in.ProductID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	uid := GetUserID(c)
	h.carts.AddToCart(uid, *product, in.Quantity)
	return c.JSON(h.carts.Snapshot(uid))
}

// UpdateQuantity godoc
// @Summary      Fijar cantidad exacta de una línea (<= 0 la elimina)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateQuantityRequest  true  "product_id, quantity"
// @Success      200   {object}  entity.Cart
// @Router       /api/cart/items [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	uid := GetUserID(c)
	h.carts.UpdateQuantity(uid, in.ProductID, in.Quantity)
	return c.JSON(h.carts.Snapshot(uid))
}

// Remove godoc
// @Summary      Eliminar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200  {object}  entity.Cart
// @Router       /api/cart/items/{product_id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	uid := GetUserID(c)
	h.carts.RemoveFromCart(uid, c.Params("product_id"))
	return c.JSON(h.carts.Snapshot(uid))
}

// Clear godoc
// @Summary      Vaciar el carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  entity.Cart
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	uid := GetUserID(c)
	h.carts.ClearCart(uid)
	return c.JSON(h.carts.Snapshot(uid))
}
