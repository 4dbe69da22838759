package dto

import (
	"time"

	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
)

// AdminRegisterRequest formulario de registro del administrador (single-tenant).
type AdminRegisterRequest struct {
	MallName  string `json:"mall_name"`
	AdminName string `json:"admin_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// AdminLoginRequest credenciales de login del administrador.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminResponse cuenta de administrador sin el hash de contraseña.
type AdminResponse struct {
	UID       string    `json:"uid"`
	MallName  string    `json:"mall_name"`
	AdminName string    `json:"admin_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminAuthResponse resultado de registro/login de administrador.
type AdminAuthResponse struct {
	Success bool           `json:"success"`
	IsAdmin bool           `json:"is_admin"`
	Token   string         `json:"token,omitempty"`
	Admin   *AdminResponse `json:"admin,omitempty"`
}

// AdminStatusResponse resultado de la consulta de estado (sin efecto en sesión).
type AdminStatusResponse struct {
	IsAdmin bool           `json:"is_admin"`
	Admin   *AdminResponse `json:"admin,omitempty"`
}

// GuardRegisterRequest formulario de registro de guardia por email.
type GuardRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// GuardLoginRequest login de guardia por guard ID + OTP.
type GuardLoginRequest struct {
	GuardID string `json:"guard_id"`
	OTP     string `json:"otp"`
}

// GuardResponse guardia sin el secreto OTP.
type GuardResponse struct {
	UID       string    `json:"uid"`
	GuardID   string    `json:"guard_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// GuardAuthResponse resultado de registro/login de guardia.
type GuardAuthResponse struct {
	Success bool           `json:"success"`
	IsGuard bool           `json:"is_guard"`
	Token   string         `json:"token,omitempty"`
	Guard   *GuardResponse `json:"guard,omitempty"`
}

// GuardStatusResponse resultado de la consulta de estado de guardia.
type GuardStatusResponse struct {
	IsGuard bool           `json:"is_guard"`
	Guard   *GuardResponse `json:"guard,omitempty"`
}

// CustomerLoginRequest login de cliente por teléfono (OTP simulado, demo).
type CustomerLoginRequest struct {
	Phone       string `json:"phone"`
	DisplayName string `json:"display_name,omitempty"`
}

// SessionResponse sesión activa actual y rol efectivo resuelto.
type SessionResponse struct {
	User  *entity.SessionUser `json:"user"`
	Role  entity.Role         `json:"role"`
	Token string              `json:"token,omitempty"`
}

// ToAdminResponse proyecta la entidad sin el hash.
func ToAdminResponse(a *entity.Admin) *AdminResponse {
	if a == nil {
		return nil
	}
	return &AdminResponse{
		UID:       a.UID,
		MallName:  a.MallName,
		AdminName: a.AdminName,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt,
	}
}

// ToGuardResponse proyecta la entidad sin el secreto OTP.
func ToGuardResponse(g *entity.Guard) *GuardResponse {
	if g == nil {
		return nil
	}
	return &GuardResponse{
		UID:       g.UID,
		GuardID:   g.GuardID,
		Name:      g.Name,
		Email:     g.Email,
		Phone:     g.Phone,
		Role:      string(g.Role),
		Status:    g.Status,
		CreatedAt: g.CreatedAt,
	}
}
