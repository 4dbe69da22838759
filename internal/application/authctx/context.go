// Package authctx contiene los view-models reactivos de autenticación, uno por
// rol (admin, guardia, cliente). Los tres tienen la misma forma: usuario
// actual, datos del rol, bandera Is<Rol>, bandera Loading y Logout.
//
// Máquina de estados por contexto: loading -> {autenticado con rol coincidente,
// autenticado con rol distinto (datos a nil), no autenticado}. Dispara la
// transición (a) una sincronización síncrona en la construcción y (b) cada
// notificación de cambio de auth del almacén. Loading solo es true en la
// ventana entre la construcción y la primera sincronización; nunca vuelve a
// true, así la UI no parpadea con cada notificación.
//
// Cada contexto hace su propia resincronización independiente contra el
// almacén como única fuente de verdad: no comparte estado con los demás ni
// cachea resultados entre notificaciones.
package authctx

import "github.com/jhoicas/Quickcart-api/internal/application/dto"

// AdminStatusChecker consulta de estado de administrador (la implementa
// auth.AdminUseCase).
type AdminStatusChecker interface {
	CheckAdminStatus(uid string) (*dto.AdminStatusResponse, error)
}

// GuardStatusChecker consulta de estado de guardia (la implementa
// auth.GuardUseCase).
type GuardStatusChecker interface {
	CheckGuardStatus(uid string) (*dto.GuardStatusResponse, error)
}
