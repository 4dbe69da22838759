package dto

// AddToCartRequest añade (o fusiona) una línea al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"` // 0 => 1
}

// UpdateQuantityRequest fija la cantidad exacta de una línea (<= 0 la elimina).
type UpdateQuantityRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
