package domain

import "errors"

// Errores de dominio (sin dependencias externas). Son fallos esperados y
// recuperables: se devuelven tal cual al cliente y nunca se tratan como
// fatales. ErrStorageCorrupt no debe escapar del almacén: un registro
// ilegible equivale a "no hay registro".
var (
	ErrNotFound              = errors.New("registro no encontrado")
	ErrAlreadyExists         = errors.New("ya existe una cuenta de administrador")
	ErrInvalidCredentials    = errors.New("email o contraseña incorrectos")
	ErrInvalidOTP            = errors.New("código OTP incorrecto")
	ErrMissingField          = errors.New("falta un campo obligatorio")
	ErrInactiveAccount       = errors.New("la cuenta del guardia está inactiva")
	ErrIDGenerationExhausted = errors.New("no se pudo generar un guard ID único tras el máximo de intentos")
	ErrStorageCorrupt        = errors.New("registro persistido ilegible")
	ErrEmptyCart             = errors.New("el carrito está vacío")
)
