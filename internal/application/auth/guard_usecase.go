package auth

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/domain/repository"
	"github.com/jhoicas/Quickcart-api/pkg/jwt"
)

const (
	// guardIDMaxAttempts intentos de generación antes de ErrIDGenerationExhausted.
	guardIDMaxAttempts = 5

	guardIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// demoOTPSecret secreto fijo por registro, marcador de posición del
	// mecanismo OTP real (no hay entrega de códigos en esta demo).
	demoOTPSecret = "123456"
)

// GuardUseCase casos de uso de identidad del guardia de salida: generación de
// guard IDs, registro por email, login por guard ID + OTP y consulta de estado.
type GuardUseCase struct {
	guardRepo repository.GuardRepository
	sessions  repository.SessionStore
	jwtCfg    JWTConfig
}

// NewGuardUseCase construye el caso de uso de identidad de guardias.
func NewGuardUseCase(guardRepo repository.GuardRepository, sessions repository.SessionStore, jwtCfg JWTConfig) *GuardUseCase {
	return &GuardUseCase{guardRepo: guardRepo, sessions: sessions, jwtCfg: jwtCfg}
}

// GenerateGuardID genera un guard ID con formato GUARD-<ts36>-<rand5> en
// mayúsculas. Por sí solo no garantiza unicidad.
func (uc *GuardUseCase) GenerateGuardID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = guardIDAlphabet[rand.IntN(len(guardIDAlphabet))]
	}
	return strings.ToUpper(fmt.Sprintf("GUARD-%s-%s", ts, suffix))
}

// GenerateUniqueGuardID reintenta GenerateGuardID contra el chequeo de unicidad
// hasta guardIDMaxAttempts veces. Con la entropía del sufijo agotar los intentos
// es prácticamente inalcanzable, pero el caso se implementa igualmente y
// devuelve ErrIDGenerationExhausted.
func (uc *GuardUseCase) GenerateUniqueGuardID() (string, error) {
	for i := 0; i < guardIDMaxAttempts; i++ {
		id := uc.GenerateGuardID()
		exists, err := uc.guardRepo.ExistsGuardID(id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", domain.ErrIDGenerationExhausted
}

// GetGuardByID busca un guardia por su guard ID visible, sin distinguir
// mayúsculas y con espacios recortados. Devuelve (nil, nil) si no existe.
func (uc *GuardUseCase) GetGuardByID(guardID string) (*entity.Guard, error) {
	return uc.guardRepo.GetByGuardID(NormalizeGuardID(guardID))
}

// RegisterGuardWithEmail registra un guardia nuevo en estado active. Devuelve
// ErrMissingField si falta el email. Asigna un guard ID único y, como en el
// registro de admin, establece sesión inmediatamente (política unificada).
func (uc *GuardUseCase) RegisterGuardWithEmail(in dto.GuardRegisterRequest) (*dto.GuardAuthResponse, error) {
	if in.Email == "" {
		return nil, domain.ErrMissingField
	}
	if in.Name == "" {
		return nil, domain.ErrMissingField
	}
	guardID, err := uc.GenerateUniqueGuardID()
	if err != nil {
		return nil, err
	}
	guard := &entity.Guard{
		UID:       uuid.New().String(),
		GuardID:   guardID,
		Name:      in.Name,
		Email:     normalizeEmail(in.Email),
		Phone:     in.Phone,
		Role:      entity.RoleGuard,
		Status:    entity.GuardStatusActive,
		CreatedAt: time.Now(),
		OTPSecret: demoOTPSecret,
	}
	if err := uc.guardRepo.Save(guard); err != nil {
		return nil, err
	}
	if err := uc.establishGuardSession(guard); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, guard.UID, string(entity.RoleGuard), guard.GuardID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.GuardAuthResponse{
		Success: true,
		IsGuard: true,
		Token:   token,
		Guard:   dto.ToGuardResponse(guard),
	}, nil
}

// LoginGuard verifica guard ID + OTP. El estado del registro se comprueba antes
// del paso OTP: un guardia inactive se rechaza con ErrInactiveAccount sin
// siquiera evaluar el código. Sin coincidencia de guard ID devuelve ErrNotFound
// y con OTP incorrecto ErrInvalidOTP; en ninguno de esos casos se crea sesión.
func (uc *GuardUseCase) LoginGuard(in dto.GuardLoginRequest) (*dto.GuardAuthResponse, error) {
	guard, err := uc.GetGuardByID(in.GuardID)
	if err != nil {
		return nil, err
	}
	if guard == nil {
		return nil, domain.ErrNotFound
	}
	if !guard.IsActive() {
		return nil, domain.ErrInactiveAccount
	}
	if in.OTP == "" || in.OTP != guard.OTPSecret {
		return nil, domain.ErrInvalidOTP
	}
	if err := uc.establishGuardSession(guard); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, guard.UID, string(entity.RoleGuard), guard.GuardID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.GuardAuthResponse{
		Success: true,
		IsGuard: true,
		Token:   token,
		Guard:   dto.ToGuardResponse(guard),
	}, nil
}

// CheckGuardStatus consulta pura por uid + rol, independiente de la sesión.
func (uc *GuardUseCase) CheckGuardStatus(uid string) (*dto.GuardStatusResponse, error) {
	guard, err := uc.guardRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if guard == nil || guard.Role != entity.RoleGuard {
		return &dto.GuardStatusResponse{IsGuard: false}, nil
	}
	return &dto.GuardStatusResponse{IsGuard: true, Guard: dto.ToGuardResponse(guard)}, nil
}

// ListGuards lista los guardias registrados (panel del administrador).
func (uc *GuardUseCase) ListGuards() ([]*dto.GuardResponse, error) {
	guards, err := uc.guardRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.GuardResponse, 0, len(guards))
	for _, g := range guards {
		out = append(out, dto.ToGuardResponse(g))
	}
	return out, nil
}

func (uc *GuardUseCase) establishGuardSession(guard *entity.Guard) error {
	return uc.sessions.Establish(&entity.SessionUser{
		UID:         guard.UID,
		Role:        entity.RoleGuard,
		DisplayName: guard.Name,
	})
}

// NormalizeGuardID canonicaliza un guard ID de entrada: trim + mayúsculas.
func NormalizeGuardID(guardID string) string {
	return strings.ToUpper(strings.TrimSpace(guardID))
}
