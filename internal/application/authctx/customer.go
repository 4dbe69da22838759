package authctx

import (
	"sync"

	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

// CustomerContext view-model de la sesión de cliente. A diferencia de los otros
// dos contextos, cuando la sesión no lleva etiqueta de rol definitiva el rol se
// desambigua con las consultas de estado admin/guard a través de
// entity.ResolveRole (prioridad admin > guard > customer, determinista).
type CustomerContext struct {
	mu          sync.Mutex
	sessions    repository.SessionStore
	admins      AdminStatusChecker
	guards      GuardStatusChecker
	unsubscribe func()

	currentUser *entity.SessionUser
	role        entity.Role
	loading     bool
}

// NewCustomerContext construye el contexto con sincronización inicial síncrona
// y suscripción a cambios de auth.
func NewCustomerContext(sessions repository.SessionStore, admins AdminStatusChecker, guards GuardStatusChecker) *CustomerContext {
	c := &CustomerContext{sessions: sessions, admins: admins, guards: guards, loading: true}
	c.sync()
	c.unsubscribe = sessions.Subscribe(c.sync)
	return c
}

func (c *CustomerContext) sync() {
	user, err := c.sessions.Current()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil || user == nil {
		c.currentUser = nil
		c.role = entity.RoleAnonymous
		return
	}
	isAdmin := false
	if status, err := c.admins.CheckAdminStatus(user.UID); err == nil {
		isAdmin = status.IsAdmin
	}
	isGuard := false
	if status, err := c.guards.CheckGuardStatus(user.UID); err == nil {
		isGuard = status.IsGuard
	}
	c.currentUser = user
	c.role = entity.ResolveRole(user, isAdmin, isGuard)
}

// CurrentUser devuelve la sesión observada en la última sincronización.
func (c *CustomerContext) CurrentUser() *entity.SessionUser {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentUser
}

// Role devuelve el rol efectivo resuelto.
func (c *CustomerContext) Role() entity.Role {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.role
}

// IsCustomer indica si la sesión activa es de cliente.
func (c *CustomerContext) IsCustomer() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.role == entity.RoleCustomer
}

// Loading true solo hasta completar la primera sincronización.
func (c *CustomerContext) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Logout destruye la sesión; la resincronización llega vía notificación.
func (c *CustomerContext) Logout() error {
	return c.sessions.Clear()
}

// Close da de baja la suscripción al almacén.
func (c *CustomerContext) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
