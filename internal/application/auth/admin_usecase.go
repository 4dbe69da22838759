package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
	"github.com/jhoicas/Quickcart-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminUseCase casos de uso de identidad del administrador: registro único,
// login, logout y consulta de estado.
type AdminUseCase struct {
	adminRepo repository.AdminRepository
	sessions  repository.SessionStore
	jwtCfg    JWTConfig
}

// NewAdminUseCase construye el caso de uso de identidad de administrador.
func NewAdminUseCase(adminRepo repository.AdminRepository, sessions repository.SessionStore, jwtCfg JWTConfig) *AdminUseCase {
	return &AdminUseCase{adminRepo: adminRepo, sessions: sessions, jwtCfg: jwtCfg}
}

// HasRegisteredAdmin indica si ya existe la cuenta de administrador.
func (uc *AdminUseCase) HasRegisteredAdmin() (bool, error) {
	return uc.adminRepo.Exists()
}

// RegisterAdmin crea la cuenta de administrador. Devuelve ErrAlreadyExists si ya
// hay una almacenada (invariante single-tenant) y deja la existente intacta.
// Establece sesión para el nuevo uid (política unificada: el registro siempre
// inicia sesión) y dispara la notificación de cambio de auth.
func (uc *AdminUseCase) RegisterAdmin(in dto.AdminRegisterRequest) (*dto.AdminAuthResponse, error) {
	if in.MallName == "" || in.AdminName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingField
	}
	exists, err := uc.adminRepo.Exists()
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &entity.Admin{
		UID:          uuid.New().String(),
		MallName:     in.MallName,
		AdminName:    in.AdminName,
		Email:        normalizeEmail(in.Email),
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.adminRepo.Save(admin); err != nil {
		return nil, err
	}
	// La sesión de admin no lleva etiqueta de rol definitiva: el rol efectivo
	// se resuelve por consulta de estado (ResolveRole, prioridad admin primero).
	if err := uc.sessions.Establish(&entity.SessionUser{
		UID:         admin.UID,
		DisplayName: admin.AdminName,
	}); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.UID, string(entity.RoleAdmin), "", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AdminAuthResponse{
		Success: true,
		IsAdmin: true,
		Token:   token,
		Admin:   dto.ToAdminResponse(admin),
	}, nil
}

// LoginAdmin verifica email/contraseña contra la cuenta almacenada. El email se
// normaliza (trim + minúsculas) antes de comparar. Devuelve ErrNotFound si no
// hay cuenta y ErrInvalidCredentials si email o contraseña no coinciden.
func (uc *AdminUseCase) LoginAdmin(in dto.AdminLoginRequest) (*dto.AdminAuthResponse, error) {
	admin, err := uc.adminRepo.Get()
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	if normalizeEmail(in.Email) != normalizeEmail(admin.Email) {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.sessions.Establish(&entity.SessionUser{
		UID:         admin.UID,
		DisplayName: admin.AdminName,
	}); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.UID, string(entity.RoleAdmin), "", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AdminAuthResponse{
		Success: true,
		IsAdmin: true,
		Token:   token,
		Admin:   dto.ToAdminResponse(admin),
	}, nil
}

// LogoutAdmin destruye la sesión activa y notifica.
func (uc *AdminUseCase) LogoutAdmin() error {
	return uc.sessions.Clear()
}

// CheckAdminStatus consulta pura: indica si el uid corresponde a la cuenta de
// administrador almacenada, sin efecto alguno sobre la sesión. Sirve para
// validar que una sesión existente sigue respaldada por una cuenta real
// (cubre el caso de un almacén borrado externamente).
func (uc *AdminUseCase) CheckAdminStatus(uid string) (*dto.AdminStatusResponse, error) {
	admin, err := uc.adminRepo.Get()
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.UID != uid || admin.Role != entity.RoleAdmin {
		return &dto.AdminStatusResponse{IsAdmin: false}, nil
	}
	return &dto.AdminStatusResponse{IsAdmin: true, Admin: dto.ToAdminResponse(admin)}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
