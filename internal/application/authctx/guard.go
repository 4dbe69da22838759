package authctx

import (
	"sync"

	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
)

// GuardContext view-model de la sesión de guardia de salida.
type GuardContext struct {
	mu          sync.Mutex
	sessions    repository.SessionStore
	guards      GuardStatusChecker
	unsubscribe func()

	currentUser *entity.SessionUser
	guardData   *dto.GuardResponse
	isGuard     bool
	loading     bool
}

// NewGuardContext construye el contexto con sincronización inicial síncrona y
// suscripción a cambios de auth.
func NewGuardContext(sessions repository.SessionStore, guards GuardStatusChecker) *GuardContext {
	c := &GuardContext{sessions: sessions, guards: guards, loading: true}
	c.sync()
	c.unsubscribe = sessions.Subscribe(c.sync)
	return c
}

func (c *GuardContext) sync() {
	user, err := c.sessions.Current()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.currentUser = user
	c.guardData = nil
	c.isGuard = false
	if err != nil || user == nil {
		c.currentUser = nil
		return
	}
	status, err := c.guards.CheckGuardStatus(user.UID)
	if err != nil || !status.IsGuard {
		return
	}
	c.isGuard = true
	c.guardData = status.Guard
}

// CurrentUser devuelve la sesión observada en la última sincronización.
func (c *GuardContext) CurrentUser() *entity.SessionUser {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentUser
}

// GuardData devuelve el registro del guardia si el rol coincide, o nil.
func (c *GuardContext) GuardData() *dto.GuardResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.guardData
}

// IsGuard indica si la sesión activa corresponde a un guardia.
func (c *GuardContext) IsGuard() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isGuard
}

// Loading true solo hasta completar la primera sincronización.
func (c *GuardContext) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Logout destruye la sesión; la resincronización llega vía notificación.
func (c *GuardContext) Logout() error {
	return c.sessions.Clear()
}

// Close da de baja la suscripción al almacén.
func (c *GuardContext) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
