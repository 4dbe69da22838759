package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Quickcart-api/internal/application/auth"
	"github.com/jhoicas/Quickcart-api/internal/application/authctx"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/infrastructure/localstore"
	apphttp "github.com/jhoicas/Quickcart-api/internal/interfaces/http"
	"github.com/jhoicas/Quickcart-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests PageGuard — redirecciones 303 de páginas por rol
// ──────────────────────────────────────────────────────────────────────────────

func buildPageApp(t *testing.T) (*fiber.App, *auth.SessionUseCase, *localstore.Store) {
	t.Helper()
	store, err := localstore.New(t.TempDir(), logger.New(logger.Config{Env: "test", Level: "error"}))
	require.NoError(t, err)
	jwtCfg := auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}
	adminUC := auth.NewAdminUseCase(store.Admins(), store.Sessions(), jwtCfg)
	guardUC := auth.NewGuardUseCase(store.Guards(), store.Sessions(), jwtCfg)
	sessionUC := auth.NewSessionUseCase(store.Sessions(), store.Admins(), store.Guards(), jwtCfg)

	// El guard de páginas lee el contexto reactivo, que se resincroniza con
	// cada login/logout vía la notificación del almacén.
	sessionCtx := authctx.NewCustomerContext(store.Sessions(), adminUC, guardUC)
	t.Cleanup(sessionCtx.Close)

	app := fiber.New()
	app.Get("/", apphttp.PageGuard(entity.RoleCustomer, sessionCtx), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "customer-home"})
	})
	app.Get("/admin", apphttp.PageGuard(entity.RoleAdmin, sessionCtx), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "admin-home"})
	})
	return app, sessionUC, store
}

func getPage(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestPageGuard_SinSesionRedirigeALaEntradaDeAuth(t *testing.T) {
	app, _, _ := buildPageApp(t)

	resp := getPage(t, app, "/")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = getPage(t, app, "/admin")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestPageGuard_RolCoincidentePermite(t *testing.T) {
	app, sessionUC, _ := buildPageApp(t)
	_, err := sessionUC.LoginCustomer(dto.CustomerLoginRequest{Phone: "555-0001"})
	require.NoError(t, err)

	resp := getPage(t, app, "/")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// El contexto reactivo sigue los cambios de sesión: tras el logout la misma
// página vuelve a redirigir a la entrada de auth sin reconstruir nada.
func TestPageGuard_LogoutVuelveARedirigir(t *testing.T) {
	app, sessionUC, _ := buildPageApp(t)
	_, err := sessionUC.LoginCustomer(dto.CustomerLoginRequest{Phone: "555-0001"})
	require.NoError(t, err)

	resp := getPage(t, app, "/")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, sessionUC.ClearSession())

	resp = getPage(t, app, "/")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

// Sesión válida pero de otro rol: redirección cruzada al home del rol real.
func TestPageGuard_RolDistintoRedirigeASuHome(t *testing.T) {
	app, sessionUC, _ := buildPageApp(t)
	_, err := sessionUC.LoginCustomer(dto.CustomerLoginRequest{Phone: "555-0001"})
	require.NoError(t, err)

	resp := getPage(t, app, "/admin")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"), "un cliente en el área admin vuelve a su home")
}
