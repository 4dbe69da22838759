package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo del centro comercial. Datos de referencia
// inmutables: el carrito solo los lee. Tax es el monto de impuesto por unidad,
// no una tasa.
type Product struct {
	ID       string          `json:"id"`
	Barcode  string          `json:"barcode"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Tax      decimal.Decimal `json:"tax"`
	Category string          `json:"category"`
	ShopID   string          `json:"shopId"`
	ShopName string          `json:"shopName"`
}
