package entity

import "github.com/shopspring/decimal"

// CartItem una línea (producto, cantidad) del carrito. Quantity siempre >= 1:
// una mutación que la deje en 0 o menos elimina la línea en lugar de guardarla.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart vista derivada del carrito. No se persiste: se recalcula desde las
// líneas en cada lectura (nunca hay un total cacheado ni obsoleto).
// Invariantes: Subtotal = Σ price·qty, TotalTax = Σ tax·qty,
// Total = Subtotal + TotalTax, TotalItems = Σ qty.
type Cart struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TotalTax   decimal.Decimal `json:"totalTax"`
	Total      decimal.Decimal `json:"total"`
}

// BuildCart calcula la vista derivada a partir de las líneas.
func BuildCart(items []CartItem) Cart {
	cart := Cart{
		Items:    items,
		Subtotal: decimal.Zero,
		TotalTax: decimal.Zero,
	}
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		cart.TotalItems += item.Quantity
		cart.Subtotal = cart.Subtotal.Add(item.Product.Price.Mul(qty))
		cart.TotalTax = cart.TotalTax.Add(item.Product.Tax.Mul(qty))
	}
	cart.Total = cart.Subtotal.Add(cart.TotalTax)
	return cart
}
