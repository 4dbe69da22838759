// Package routeguard decide, de forma pura, qué hacer con una navegación a un
// área protegida por rol: esperar mientras el contexto está cargando, permitir,
// redirigir a la entrada de auth del rol requerido, o —cuando hay sesión pero
// con otro rol— redirigir al home del rol real. Esa redirección cruzada es
// deliberada: nunca una página de error genérica.
package routeguard

import "github.com/jhoicas/Quickcart-api/internal/domain/entity"

// Action resultado de la decisión.
type Action string

const (
	ActionWait         Action = "wait"          // loading: estado neutro, sin redirección
	ActionAllow        Action = "allow"         // renderizar el contenido protegido
	ActionRedirectAuth Action = "redirect_auth" // sin sesión: a la entrada de auth del rol
	ActionRedirectHome Action = "redirect_home" // rol distinto: al home del rol real
)

// Decision acción a tomar y, para redirecciones, la ruta destino.
type Decision struct {
	Action Action
	Target string
}

// Rutas de entrada de auth y home por rol.
var (
	authEntries = map[entity.Role]string{
		entity.RoleAdmin:    "/admin/login",
		entity.RoleGuard:    "/guard/login",
		entity.RoleCustomer: "/login",
	}
	homes = map[entity.Role]string{
		entity.RoleAdmin:    "/admin",
		entity.RoleGuard:    "/guard",
		entity.RoleCustomer: "/",
	}
)

// Decide evalúa el acceso de una sesión con rol efectivo actual a un área que
// requiere required. Es función pura de (loading, user, actual).
func Decide(required entity.Role, loading bool, user *entity.SessionUser, actual entity.Role) Decision {
	if loading {
		return Decision{Action: ActionWait}
	}
	if user == nil || actual == entity.RoleAnonymous {
		return Decision{Action: ActionRedirectAuth, Target: authEntries[required]}
	}
	if actual != required {
		return Decision{Action: ActionRedirectHome, Target: homes[actual]}
	}
	return Decision{Action: ActionAllow}
}

// ForAdmin predicado del área de administrador.
func ForAdmin(loading bool, user *entity.SessionUser, actual entity.Role) Decision {
	return Decide(entity.RoleAdmin, loading, user, actual)
}

// ForGuard predicado del área de guardia.
func ForGuard(loading bool, user *entity.SessionUser, actual entity.Role) Decision {
	return Decide(entity.RoleGuard, loading, user, actual)
}

// ForCustomer predicado del área de cliente.
func ForCustomer(loading bool, user *entity.SessionUser, actual entity.Role) Decision {
	return Decide(entity.RoleCustomer, loading, user, actual)
}
