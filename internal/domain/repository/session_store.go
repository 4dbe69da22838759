package repository

import "github.com/jhoicas/Quickcart-api/internal/domain/entity"

// SessionStore puerto de persistencia de la sesión activa única. Establish y
// Clear notifican a todos los observadores de forma síncrona, en orden de
// suscripción, antes de retornar: es el único mecanismo de señalización entre
// los contextos de auth (sustituye al listener push de un backend remoto).
type SessionStore interface {
	Current() (*entity.SessionUser, error)
	Establish(user *entity.SessionUser) error
	Clear() error
	// Subscribe registra un observador de cambios de auth y devuelve la
	// función para darlo de baja (adquisición con liberación garantizada).
	Subscribe(fn func()) (unsubscribe func())
}
