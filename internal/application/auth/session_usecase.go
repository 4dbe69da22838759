package auth

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
	"github.com/jhoicas/Quickcart-api/pkg/jwt"
)

// SessionUseCase operaciones de sesión consumidas por cualquier rol: login de
// cliente (OTP simulado), lectura de la sesión activa con rol resuelto y
// limpieza de sesión.
type SessionUseCase struct {
	sessions  repository.SessionStore
	adminRepo repository.AdminRepository
	guardRepo repository.GuardRepository
	jwtCfg    JWTConfig
}

// NewSessionUseCase construye el caso de uso de sesión.
func NewSessionUseCase(sessions repository.SessionStore, adminRepo repository.AdminRepository, guardRepo repository.GuardRepository, jwtCfg JWTConfig) *SessionUseCase {
	return &SessionUseCase{sessions: sessions, adminRepo: adminRepo, guardRepo: guardRepo, jwtCfg: jwtCfg}
}

// LoginCustomer establece una sesión de cliente a partir del teléfono. La
// verificación OTP del cliente es simulada (fuera de alcance por diseño): el
// teléfono es el único campo obligatorio.
func (uc *SessionUseCase) LoginCustomer(in dto.CustomerLoginRequest) (*dto.SessionResponse, error) {
	if in.Phone == "" {
		return nil, domain.ErrMissingField
	}
	user := &entity.SessionUser{
		UID:         uuid.New().String(),
		Role:        entity.RoleCustomer,
		DisplayName: in.DisplayName,
		PhoneNumber: in.Phone,
	}
	if err := uc.sessions.Establish(user); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.UID, string(entity.RoleCustomer), "", uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{User: user, Role: entity.RoleCustomer, Token: token}, nil
}

// CurrentSession devuelve la sesión activa y su rol efectivo. El rol se
// resuelve con ResolveRole sobre las consultas de estado admin/guard, nunca por
// el orden en que éstas se encadenen.
func (uc *SessionUseCase) CurrentSession() (*dto.SessionResponse, error) {
	user, err := uc.sessions.Current()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &dto.SessionResponse{Role: entity.RoleAnonymous}, nil
	}
	role, err := uc.resolveRole(user)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{User: user, Role: role}, nil
}

// ClearSession destruye la sesión activa (cualquier rol) y notifica.
func (uc *SessionUseCase) ClearSession() error {
	return uc.sessions.Clear()
}

func (uc *SessionUseCase) resolveRole(user *entity.SessionUser) (entity.Role, error) {
	admin, err := uc.adminRepo.Get()
	if err != nil {
		return entity.RoleAnonymous, err
	}
	isAdmin := admin != nil && admin.UID == user.UID
	guard, err := uc.guardRepo.GetByUID(user.UID)
	if err != nil {
		return entity.RoleAnonymous, err
	}
	isGuard := guard != nil && guard.Role == entity.RoleGuard
	return entity.ResolveRole(user, isAdmin, isGuard), nil
}
