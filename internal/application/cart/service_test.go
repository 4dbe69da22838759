package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Quickcart-api/internal/application/cart"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUID = "customer-001"

func rice() entity.Product {
	return entity.Product{
		ID: "prod-001", Barcode: "8901234567890", Name: "Premium Basmati Rice",
		Price: decimal.NewFromInt(299), Tax: decimal.NewFromFloat(14.95),
		Category: "Groceries", ShopID: "shop-001", ShopName: "Fresh Mart",
	}
}

func tea() entity.Product {
	return entity.Product{
		ID: "prod-002", Barcode: "8901234567891", Name: "Organic Green Tea",
		Price: decimal.NewFromInt(450), Tax: decimal.NewFromFloat(22.5),
		Category: "Beverages", ShopID: "shop-002", ShopName: "Health Store",
	}
}

// assertTotals verifica los invariantes de la vista derivada:
// Subtotal = Σ price·qty, TotalTax = Σ tax·qty, Total = Subtotal + TotalTax.
func assertTotals(t *testing.T, c entity.Cart) {
	t.Helper()
	items := 0
	subtotal, tax := decimal.Zero, decimal.Zero
	for _, it := range c.Items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		items += it.Quantity
		subtotal = subtotal.Add(it.Product.Price.Mul(qty))
		tax = tax.Add(it.Product.Tax.Mul(qty))
	}
	assert.Equal(t, items, c.TotalItems, "TotalItems debe ser la suma de cantidades")
	assert.True(t, c.Subtotal.Equal(subtotal), "Subtotal debe ser Σ price·qty")
	assert.True(t, c.TotalTax.Equal(tax), "TotalTax debe ser Σ tax·qty")
	assert.True(t, c.Total.Equal(subtotal.Add(tax)), "Total debe ser Subtotal + TotalTax")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToCart_FusionaCantidadesDelMismoProducto(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart(testUID, rice(), 2)
	svc.AddToCart(testUID, rice(), 3)

	c := svc.Snapshot(testUID)
	require.Len(t, c.Items, 1, "añadir dos veces el mismo producto debe fusionar en una línea")
	assert.Equal(t, 5, c.Items[0].Quantity, "las cantidades deben sumarse (2+3=5)")
	assertTotals(t, c)
}

func TestAddToCart_CantidadCeroOMenorEquivaleAUno(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart(testUID, rice(), 0)

	c := svc.Snapshot(testUID)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity, "cantidad <= 0 al añadir equivale a 1")
}

func TestAddToCart_ConservaElOrdenDeInsercion(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart(testUID, rice(), 1)
	svc.AddToCart(testUID, tea(), 1)
	svc.AddToCart(testUID, rice(), 1) // fusiona, no reordena

	c := svc.Snapshot(testUID)
	require.Len(t, c.Items, 2)
	assert.Equal(t, "prod-001", c.Items[0].Product.ID)
	assert.Equal(t, "prod-002", c.Items[1].Product.ID)
}

func TestUpdateQuantity_CeroEliminaLaLinea(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart(testUID, rice(), 2)
	svc.AddToCart(testUID, tea(), 1)

	svc.UpdateQuantity(testUID, "prod-001", 0)

	c := svc.Snapshot(testUID)
	require.Len(t, c.Items, 1, "fijar cantidad 0 debe eliminar la línea")
	assert.Equal(t, "prod-002", c.Items[0].Product.ID)
	assertTotals(t, c)
}

func TestUpdateQuantity_ProductoDesconocidoNoHaceNada(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart(testUID, rice(), 2)

	svc.UpdateQuantity(testUID, "prod-999", 7)

	c := svc.Snapshot(testUID)
	require.Len(t, c.Items, 1, "actualizar un producto inexistente no debe crear líneas")
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestRemoveFromCart_EliminaSoloLaLineaIndicada(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart(testUID, rice(), 2)
	svc.AddToCart(testUID, tea(), 3)

	svc.RemoveFromCart(testUID, "prod-001")

	c := svc.Snapshot(testUID)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "prod-002", c.Items[0].Product.ID)
	assertTotals(t, c)
}

func TestClearCart_DejaElCarritoVacio(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart(testUID, rice(), 2)
	svc.AddToCart(testUID, tea(), 3)

	svc.ClearCart(testUID)

	c := svc.Snapshot(testUID)
	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.TotalItems)
	assert.True(t, c.Total.IsZero(), "el total de un carrito vacío es cero")
}

func TestSnapshot_TotalesCoherentesConVariosProductos(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart(testUID, rice(), 3)
	svc.AddToCart(testUID, tea(), 2)

	c := svc.Snapshot(testUID)
	assert.Equal(t, 5, c.TotalItems)
	// 3*299 + 2*450 = 1797
	assert.True(t, c.Subtotal.Equal(decimal.NewFromInt(1797)))
	// 3*14.95 + 2*22.5 = 89.85
	assert.True(t, c.TotalTax.Equal(decimal.NewFromFloat(89.85)))
	assertTotals(t, c)
}

func TestSnapshot_EsUnaCopiaAislada(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart(testUID, rice(), 1)

	c := svc.Snapshot(testUID)
	c.Items[0].Quantity = 99 // mutar la copia no debe tocar el servicio

	again := svc.Snapshot(testUID)
	assert.Equal(t, 1, again.Items[0].Quantity, "Snapshot debe devolver una copia defensiva")
}

func TestCarritosPorUsuario_SonIndependientes(t *testing.T) {
	svc := cart.NewService()
	svc.AddToCart("uid-a", rice(), 1)
	svc.AddToCart("uid-b", tea(), 4)

	a := svc.Snapshot("uid-a")
	b := svc.Snapshot("uid-b")
	require.Len(t, a.Items, 1)
	require.Len(t, b.Items, 1)
	assert.Equal(t, "prod-001", a.Items[0].Product.ID)
	assert.Equal(t, "prod-002", b.Items[0].Product.ID)
}
