// Package cart mantiene el carrito de compra de cada cliente durante una
// sesión de compra: líneas (producto, cantidad) en orden de inserción y la
// vista derivada con totales exactos.
package cart

import (
	"sync"

	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
)

// Service modelo de agregación del carrito. Todas las operaciones son totales:
// no tienen modos de fallo más allá de entradas de tipo inválido, que son un
// error de programación. Un proceso es el único escritor de cada carrito (una
// sesión de compra activa por cliente).
type Service struct {
	mu    sync.Mutex
	items map[string][]entity.CartItem // líneas por uid de cliente, orden de inserción
}

// NewService construye el servicio de carritos.
func NewService() *Service {
	return &Service{items: make(map[string][]entity.CartItem)}
}

// AddToCart añade quantity unidades del producto al carrito del cliente. Si ya
// existe una línea para product.ID incrementa su cantidad; si no, añade la
// línea al final (el orden de inserción importa para la presentación, no para
// los totales). quantity <= 0 se interpreta como 1.
func (s *Service) AddToCart(uid string, product entity.Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.items[uid]
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			return
		}
	}
	s.items[uid] = append(items, entity.CartItem{Product: product, Quantity: quantity})
}

// RemoveFromCart elimina la línea del producto; si no existe no hace nada.
func (s *Service) RemoveFromCart(uid, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(uid, productID)
}

// UpdateQuantity fija la cantidad exacta de la línea (no aditivo). Con
// quantity <= 0 equivale a RemoveFromCart; con productID desconocido no hace
// nada.
func (s *Service) UpdateQuantity(uid, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(uid, productID)
		return
	}
	items := s.items[uid]
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			return
		}
	}
}

// ClearCart vacía todas las líneas; se llama tras un checkout exitoso o por
// acción explícita del usuario.
func (s *Service) ClearCart(uid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, uid)
}

// Snapshot devuelve la vista derivada del carrito. Los totales se recalculan
// en cada lectura: nunca hay un total cacheado.
func (s *Service) Snapshot(uid string) entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]entity.CartItem, len(s.items[uid]))
	copy(items, s.items[uid])
	return entity.BuildCart(items)
}

func (s *Service) removeLocked(uid, productID string) {
	items := s.items[uid]
	for i := range items {
		if items[i].Product.ID == productID {
			s.items[uid] = append(items[:i], items[i+1:]...)
			return
		}
	}
}
