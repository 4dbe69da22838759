package authctx

import (
	"sync"

	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

// AdminContext view-model de la sesión de administrador.
type AdminContext struct {
	mu          sync.Mutex
	sessions    repository.SessionStore
	admins      AdminStatusChecker
	unsubscribe func()

	currentUser *entity.SessionUser
	adminData   *dto.AdminResponse
	isAdmin     bool
	loading     bool
}

// NewAdminContext construye el contexto, hace la sincronización inicial de
// forma síncrona y queda suscrito a las notificaciones de cambio de auth.
func NewAdminContext(sessions repository.SessionStore, admins AdminStatusChecker) *AdminContext {
	c := &AdminContext{sessions: sessions, admins: admins, loading: true}
	c.sync()
	c.unsubscribe = sessions.Subscribe(c.sync)
	return c
}

// sync relee el almacén y valida que la sesión siga respaldada por la cuenta
// de administrador real.
func (c *AdminContext) sync() {
	user, err := c.sessions.Current()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.currentUser = user
	c.adminData = nil
	c.isAdmin = false
	if err != nil || user == nil {
		c.currentUser = nil
		return
	}
	status, err := c.admins.CheckAdminStatus(user.UID)
	if err != nil || !status.IsAdmin {
		// Autenticado pero con rol distinto: usuario visible, datos a nil.
		return
	}
	c.isAdmin = true
	c.adminData = status.Admin
}

// CurrentUser devuelve la sesión observada en la última sincronización.
func (c *AdminContext) CurrentUser() *entity.SessionUser {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentUser
}

// AdminData devuelve la cuenta de administrador si el rol coincide, o nil.
func (c *AdminContext) AdminData() *dto.AdminResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.adminData
}

// IsAdmin indica si la sesión activa corresponde al administrador.
func (c *AdminContext) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isAdmin
}

// Loading true solo hasta completar la primera sincronización.
func (c *AdminContext) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Logout destruye la sesión; la resincronización llega vía notificación.
func (c *AdminContext) Logout() error {
	return c.sessions.Clear()
}

// Close da de baja la suscripción al almacén.
func (c *AdminContext) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
