package entity

import "time"

// Estados válidos para Guard.
const (
	GuardStatusActive   = "active"
	GuardStatusInactive = "inactive"
)

// Guard cuenta de guardia de salida. GuardID es el identificador presentable
// (GUARD-<ts36>-<rand5>, en mayúsculas) y es único entre todos los registros,
// distinto del UID interno. Un guardia inactive no puede iniciar sesión.
// OTPSecret es un secreto fijo de demo por registro, marcador de posición de un
// mecanismo OTP real.
type Guard struct {
	UID       string    `json:"uid"`
	GuardID   string    `json:"guardId"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	Status    string    `json:"status"` // active, inactive
	CreatedAt time.Time `json:"createdAt"`
	OTPSecret string    `json:"otpSecret"`
}

// IsActive indica si el guardia puede iniciar sesión.
func (g *Guard) IsActive() bool {
	return g != nil && g.Status == GuardStatusActive
}
