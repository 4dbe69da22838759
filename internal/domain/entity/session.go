package entity

// SessionUser identidad autenticada activa. Existe como máximo una a la vez
// (modelo de sesión única): se crea en login, se destruye en logout y nunca se
// muta en sitio, siempre se reemplaza completa.
type SessionUser struct {
	UID         string `json:"uid"`
	Role        Role   `json:"role"` // customer o guard; el admin se resuelve por consulta
	DisplayName string `json:"displayName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
