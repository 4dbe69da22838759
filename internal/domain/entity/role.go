package entity

// Role rol efectivo de la identidad activa. Es un enum explícito: la prioridad
// admin > guard > customer se decide en un solo lugar (ResolveRole) y no por el
// orden en que se encadenen las consultas.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleCustomer  Role = "customer"
	RoleGuard     Role = "guard"
	RoleAdmin     Role = "admin"
)

// ResolveRole resuelve el rol efectivo de una sesión a partir del usuario activo
// y de los resultados de las consultas de estado admin/guard. Con sesión única
// no debería haber más de una coincidencia, pero si la hay el orden es
// determinista: admin > guard > customer.
func ResolveRole(session *SessionUser, isAdmin, isGuard bool) Role {
	if session == nil {
		return RoleAnonymous
	}
	if isAdmin {
		return RoleAdmin
	}
	if isGuard || session.Role == RoleGuard {
		return RoleGuard
	}
	return RoleCustomer
}
