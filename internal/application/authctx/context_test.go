package authctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Quickcart-api/internal/application/auth"
	"github.com/jhoicas/Quickcart-api/internal/application/authctx"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Quickcart-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var ctxJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "quickcart-test"}

type fixtures struct {
	store     *localstore.Store
	adminUC   *auth.AdminUseCase
	guardUC   *auth.GuardUseCase
	sessionUC *auth.SessionUseCase
}

func newCtxFixtures(t *testing.T) fixtures {
	t.Helper()
	store, err := localstore.New(t.TempDir(), logger.New(logger.Config{Env: "test", Level: "error"}))
	require.NoError(t, err)
	return fixtures{
		store:     store,
		adminUC:   auth.NewAdminUseCase(store.Admins(), store.Sessions(), ctxJWT),
		guardUC:   auth.NewGuardUseCase(store.Guards(), store.Sessions(), ctxJWT),
		sessionUC: auth.NewSessionUseCase(store.Sessions(), store.Admins(), store.Guards(), ctxJWT),
	}
}

func registerAdmin(t *testing.T, f fixtures) *dto.AdminAuthResponse {
	t.Helper()
	out, err := f.adminUC.RegisterAdmin(dto.AdminRegisterRequest{
		MallName: "Phoenix MarketCity", AdminName: "Ana", Email: "ana@mall.com", Password: "super-secreta",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdminContext
// ──────────────────────────────────────────────────────────────────────────────

// Loading solo es true en la ventana entre la construcción y la primera
// sincronización; como la construcción sincroniza de forma síncrona, desde
// fuera nunca se observa true.
func TestAdminContext_LoadingTerminaConLaConstruccion(t *testing.T) {
	f := newCtxFixtures(t)

	ctx := authctx.NewAdminContext(f.store.Sessions(), f.adminUC)
	defer ctx.Close()

	assert.False(t, ctx.Loading())
	assert.False(t, ctx.IsAdmin())
	assert.Nil(t, ctx.CurrentUser())
}

func TestAdminContext_SeActualizaConElLogin(t *testing.T) {
	f := newCtxFixtures(t)
	ctx := authctx.NewAdminContext(f.store.Sessions(), f.adminUC)
	defer ctx.Close()

	out := registerAdmin(t, f)

	// La notificación es síncrona: al volver del registro el contexto ya ve la sesión.
	assert.True(t, ctx.IsAdmin())
	require.NotNil(t, ctx.CurrentUser())
	assert.Equal(t, out.Admin.UID, ctx.CurrentUser().UID)
	require.NotNil(t, ctx.AdminData())
	assert.Equal(t, "ana@mall.com", ctx.AdminData().Email)
	assert.False(t, ctx.Loading(), "Loading nunca vuelve a true tras la primera sincronización")
}

// Sesión de otro rol: usuario visible, pero IsAdmin false y datos a nil.
func TestAdminContext_SesionDeOtroRolNoEsAdmin(t *testing.T) {
	f := newCtxFixtures(t)
	ctx := authctx.NewAdminContext(f.store.Sessions(), f.adminUC)
	defer ctx.Close()

	_, err := f.sessionUC.LoginCustomer(dto.CustomerLoginRequest{Phone: "555-0001"})
	require.NoError(t, err)

	assert.False(t, ctx.IsAdmin())
	assert.NotNil(t, ctx.CurrentUser(), "el usuario autenticado sigue visible")
	assert.Nil(t, ctx.AdminData(), "los datos de admin quedan a nil con rol distinto")
}

func TestAdminContext_LogoutLimpiaElEstado(t *testing.T) {
	f := newCtxFixtures(t)
	ctx := authctx.NewAdminContext(f.store.Sessions(), f.adminUC)
	defer ctx.Close()

	registerAdmin(t, f)
	require.True(t, ctx.IsAdmin())

	require.NoError(t, ctx.Logout())
	assert.False(t, ctx.IsAdmin())
	assert.Nil(t, ctx.CurrentUser())
	assert.Nil(t, ctx.AdminData())
}

func TestAdminContext_CloseDetieneLaResincronizacion(t *testing.T) {
	f := newCtxFixtures(t)
	ctx := authctx.NewAdminContext(f.store.Sessions(), f.adminUC)

	ctx.Close()
	registerAdmin(t, f)

	assert.False(t, ctx.IsAdmin(), "tras Close el contexto no debe resincronizar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GuardContext
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardContext_SeActualizaConElLoginDeGuardia(t *testing.T) {
	f := newCtxFixtures(t)
	require.NoError(t, f.store.Guards().SeedDemoGuard())

	ctx := authctx.NewGuardContext(f.store.Sessions(), f.guardUC)
	defer ctx.Close()

	_, err := f.guardUC.LoginGuard(dto.GuardLoginRequest{GuardID: "GUARD-DEMO-001", OTP: "123456"})
	require.NoError(t, err)

	assert.True(t, ctx.IsGuard())
	require.NotNil(t, ctx.GuardData())
	assert.Equal(t, "GUARD-DEMO-001", ctx.GuardData().GuardID)
}

func TestGuardContext_SesionDeClienteNoEsGuardia(t *testing.T) {
	f := newCtxFixtures(t)
	ctx := authctx.NewGuardContext(f.store.Sessions(), f.guardUC)
	defer ctx.Close()

	_, err := f.sessionUC.LoginCustomer(dto.CustomerLoginRequest{Phone: "555-0001"})
	require.NoError(t, err)

	assert.False(t, ctx.IsGuard())
	assert.Nil(t, ctx.GuardData())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CustomerContext — desambiguación de rol
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomerContext_SinSesionEsAnonimo(t *testing.T) {
	f := newCtxFixtures(t)
	ctx := authctx.NewCustomerContext(f.store.Sessions(), f.adminUC, f.guardUC)
	defer ctx.Close()

	assert.Equal(t, entity.RoleAnonymous, ctx.Role())
	assert.False(t, ctx.IsCustomer())
}

func TestCustomerContext_ClienteTrasLogin(t *testing.T) {
	f := newCtxFixtures(t)
	ctx := authctx.NewCustomerContext(f.store.Sessions(), f.adminUC, f.guardUC)
	defer ctx.Close()

	_, err := f.sessionUC.LoginCustomer(dto.CustomerLoginRequest{Phone: "555-0001"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleCustomer, ctx.Role())
	assert.True(t, ctx.IsCustomer())
}

// La sesión de admin no lleva etiqueta de rol; el contexto de cliente debe
// resolverla como admin por consulta de estado, nunca como customer.
func TestCustomerContext_SesionDeAdminResuelveAdmin(t *testing.T) {
	f := newCtxFixtures(t)
	ctx := authctx.NewCustomerContext(f.store.Sessions(), f.adminUC, f.guardUC)
	defer ctx.Close()

	registerAdmin(t, f)

	assert.Equal(t, entity.RoleAdmin, ctx.Role())
	assert.False(t, ctx.IsCustomer())
}
