package entity

import "time"

// Admin cuenta del administrador del centro comercial. Invariante: existe como
// máximo una en el almacén (supuesto single-tenant). Se crea una sola vez en el
// registro y se lee en cada intento de login; este núcleo nunca la actualiza.
type Admin struct {
	UID          string    `json:"uid"`
	MallName     string    `json:"mallName"`
	AdminName    string    `json:"adminName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"passwordHash"` // bcrypt, nunca en plano después de persistir
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
