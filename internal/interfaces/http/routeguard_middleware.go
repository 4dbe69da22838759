package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Quickcart-api/internal/application/authctx"
	"github.com/jhoicas/Quickcart-api/internal/application/routeguard"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
)

// PageGuard aplica la decisión de navegación a rutas de página del navegador:
// allow sigue al handler, las redirecciones responden 303 hacia la entrada de
// auth del rol requerido o al home del rol real. Lee el contexto de sesión
// reactivo, que se resincroniza con cada cambio de auth del almacén; la
// sincronización inicial es síncrona, así que del lado del servidor nunca hay
// estado de carga que esperar.
func PageGuard(required entity.Role, session *authctx.CustomerContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := routeguard.Decide(required, session.Loading(), session.CurrentUser(), session.Role())
		switch decision.Action {
		case routeguard.ActionAllow, routeguard.ActionWait:
			return c.Next()
		default:
			return c.Redirect(decision.Target, fiber.StatusSeeOther)
		}
	}
}
