package auth_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Quickcart-api/internal/application/auth"
	"github.com/jhoicas/Quickcart-api/internal/application/dto"
	"github.com/jhoicas/Quickcart-api/internal/domain"
	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Quickcart-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test — casos de uso sobre un almacén local temporal real
// ──────────────────────────────────────────────────────────────────────────────

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "quickcart-test"}

func newFixtures(t *testing.T) (*auth.AdminUseCase, *auth.GuardUseCase, *auth.SessionUseCase, *localstore.Store) {
	t.Helper()
	store, err := localstore.New(t.TempDir(), logger.New(logger.Config{Env: "test", Level: "error"}))
	require.NoError(t, err)
	adminUC := auth.NewAdminUseCase(store.Admins(), store.Sessions(), testJWT)
	guardUC := auth.NewGuardUseCase(store.Guards(), store.Sessions(), testJWT)
	sessionUC := auth.NewSessionUseCase(store.Sessions(), store.Admins(), store.Guards(), testJWT)
	return adminUC, guardUC, sessionUC, store
}

func adminRequest() dto.AdminRegisterRequest {
	return dto.AdminRegisterRequest{
		MallName:  "Phoenix MarketCity",
		AdminName: "Ana",
		Email:     "Ana@Mall.com",
		Password:  "super-secreta",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AdminUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterAdmin_CreaCuentaYEstableceSesion(t *testing.T) {
	adminUC, _, _, store := newFixtures(t)

	out, err := adminUC.RegisterAdmin(adminRequest())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.Success)
	assert.True(t, out.IsAdmin)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@mall.com", out.Admin.Email, "el email se normaliza al persistir")

	// El registro siempre inicia sesión (política unificada).
	session, err := store.Sessions().Current()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, out.Admin.UID, session.UID)
}

func TestRegisterAdmin_SegundoRegistroRechazado(t *testing.T) {
	adminUC, _, _, _ := newFixtures(t)

	_, err := adminUC.RegisterAdmin(adminRequest())
	require.NoError(t, err)

	second := adminRequest()
	second.Email = "otra@mall.com"
	_, err = adminUC.RegisterAdmin(second)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists, "la cuenta de admin es singleton")

	// La cuenta original queda intacta.
	out, err := adminUC.LoginAdmin(dto.AdminLoginRequest{Email: "ana@mall.com", Password: "super-secreta"})
	require.NoError(t, err)
	assert.Equal(t, "ana@mall.com", out.Admin.Email)
}

func TestRegisterAdmin_CamposObligatorios(t *testing.T) {
	adminUC, _, _, _ := newFixtures(t)

	in := adminRequest()
	in.Password = ""
	_, err := adminUC.RegisterAdmin(in)
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestLoginAdmin_EmailSinDistinguirMayusculas(t *testing.T) {
	adminUC, _, _, _ := newFixtures(t)
	_, err := adminUC.RegisterAdmin(adminRequest())
	require.NoError(t, err)

	out, err := adminUC.LoginAdmin(dto.AdminLoginRequest{Email: "  ANA@MALL.COM  ", Password: "super-secreta"})
	require.NoError(t, err)
	assert.True(t, out.IsAdmin)
}

func TestLoginAdmin_SinCuentaDevuelveNotFound(t *testing.T) {
	adminUC, _, _, _ := newFixtures(t)

	_, err := adminUC.LoginAdmin(dto.AdminLoginRequest{Email: "nadie@mall.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoginAdmin_PasswordIncorrecta(t *testing.T) {
	adminUC, _, _, _ := newFixtures(t)
	_, err := adminUC.RegisterAdmin(adminRequest())
	require.NoError(t, err)

	_, err = adminUC.LoginAdmin(dto.AdminLoginRequest{Email: "ana@mall.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCheckAdminStatus_EsConsultaPura(t *testing.T) {
	adminUC, _, _, store := newFixtures(t)
	out, err := adminUC.RegisterAdmin(adminRequest())
	require.NoError(t, err)
	require.NoError(t, adminUC.LogoutAdmin())

	status, err := adminUC.CheckAdminStatus(out.Admin.UID)
	require.NoError(t, err)
	assert.True(t, status.IsAdmin)

	status, err = adminUC.CheckAdminStatus("uid-ajeno")
	require.NoError(t, err)
	assert.False(t, status.IsAdmin)

	// La consulta no debe haber restablecido sesión alguna.
	session, err := store.Sessions().Current()
	require.NoError(t, err)
	assert.Nil(t, session)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GuardUseCase
// ──────────────────────────────────────────────────────────────────────────────

var guardIDPattern = regexp.MustCompile(`^GUARD-[0-9A-Z]+-[0-9A-Z]{5}$`)

func TestGenerateGuardID_FormatoYMayusculas(t *testing.T) {
	_, guardUC, _, _ := newFixtures(t)

	id := guardUC.GenerateGuardID()
	assert.Regexp(t, guardIDPattern, id, "formato GUARD-<ts36>-<rand5> en mayúsculas")
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestGenerateUniqueGuardID_EvitaColisiones(t *testing.T) {
	_, guardUC, _, store := newFixtures(t)

	// Pre-poblar con registros existentes; los IDs nuevos no deben chocar.
	for i := 0; i < 100; i++ {
		g := &entity.Guard{
			UID:     fmt.Sprintf("uid-%03d", i),
			GuardID: guardUC.GenerateGuardID(),
			Role:    entity.RoleGuard,
			Status:  entity.GuardStatusActive,
		}
		require.NoError(t, store.Guards().Save(g))
	}

	id, err := guardUC.GenerateUniqueGuardID()
	require.NoError(t, err)
	exists, err := store.Guards().ExistsGuardID(id)
	require.NoError(t, err)
	assert.False(t, exists, "el ID generado debe ser nuevo")
}

func TestRegisterGuard_AsignaIDYEstableceSesion(t *testing.T) {
	_, guardUC, _, store := newFixtures(t)

	out, err := guardUC.RegisterGuardWithEmail(dto.GuardRegisterRequest{Name: "Luis", Email: "Luis@Mall.com"})
	require.NoError(t, err)
	assert.True(t, out.IsGuard)
	assert.Regexp(t, guardIDPattern, out.Guard.GuardID)
	assert.Equal(t, "luis@mall.com", out.Guard.Email)
	assert.Equal(t, entity.GuardStatusActive, out.Guard.Status, "los registros nuevos nacen active")

	session, err := store.Sessions().Current()
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, out.Guard.UID, session.UID)
	assert.Equal(t, entity.RoleGuard, session.Role)
}

func TestRegisterGuard_EmailObligatorio(t *testing.T) {
	_, guardUC, _, _ := newFixtures(t)

	_, err := guardUC.RegisterGuardWithEmail(dto.GuardRegisterRequest{Name: "Luis"})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestLoginGuard_ConDemoSeedYOTPFijo(t *testing.T) {
	_, guardUC, _, store := newFixtures(t)
	require.NoError(t, store.Guards().SeedDemoGuard())

	// El guard ID de entrada se canonicaliza: trim + mayúsculas.
	out, err := guardUC.LoginGuard(dto.GuardLoginRequest{GuardID: "  guard-demo-001 ", OTP: "123456"})
	require.NoError(t, err)
	assert.True(t, out.IsGuard)
	assert.Equal(t, "GUARD-DEMO-001", out.Guard.GuardID)
}

func TestLoginGuard_OTPIncorrectoNoCreaSesion(t *testing.T) {
	_, guardUC, _, store := newFixtures(t)
	require.NoError(t, store.Guards().SeedDemoGuard())

	_, err := guardUC.LoginGuard(dto.GuardLoginRequest{GuardID: "GUARD-DEMO-001", OTP: "000000"})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)

	session, err := store.Sessions().Current()
	require.NoError(t, err)
	assert.Nil(t, session, "un login fallido no debe dejar sesión")
}

func TestLoginGuard_GuardIDDesconocido(t *testing.T) {
	_, guardUC, _, _ := newFixtures(t)

	_, err := guardUC.LoginGuard(dto.GuardLoginRequest{GuardID: "GUARD-NADIE-00000", OTP: "123456"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El estado se comprueba antes que el OTP: un guardia inactive se rechaza
// aunque el código fuera correcto.
func TestLoginGuard_InactivoSeRechazaAntesDelOTP(t *testing.T) {
	_, guardUC, _, store := newFixtures(t)
	g := &entity.Guard{
		UID:       "uid-inactivo",
		GuardID:   "GUARD-XXXXX-11111",
		Name:      "Baja",
		Role:      entity.RoleGuard,
		Status:    entity.GuardStatusInactive,
		OTPSecret: "123456",
	}
	require.NoError(t, store.Guards().Save(g))

	_, err := guardUC.LoginGuard(dto.GuardLoginRequest{GuardID: "GUARD-XXXXX-11111", OTP: "123456"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionUseCase — login de cliente y rol resuelto
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginCustomer_SoloRequiereTelefono(t *testing.T) {
	_, _, sessionUC, _ := newFixtures(t)

	out, err := sessionUC.LoginCustomer(dto.CustomerLoginRequest{Phone: "555-0001"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.Role)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "555-0001", out.User.PhoneNumber)

	_, err = sessionUC.LoginCustomer(dto.CustomerLoginRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestCurrentSession_SinSesionEsAnonimo(t *testing.T) {
	_, _, sessionUC, _ := newFixtures(t)

	out, err := sessionUC.CurrentSession()
	require.NoError(t, err)
	assert.Nil(t, out.User)
	assert.Equal(t, entity.RoleAnonymous, out.Role)
}

// La sesión de admin se guarda sin etiqueta de rol; el rol efectivo sale de la
// consulta de estado, con prioridad admin > guard > customer.
func TestCurrentSession_ResuelveRolAdminPorConsulta(t *testing.T) {
	adminUC, _, sessionUC, _ := newFixtures(t)
	_, err := adminUC.RegisterAdmin(adminRequest())
	require.NoError(t, err)

	out, err := sessionUC.CurrentSession()
	require.NoError(t, err)
	require.NotNil(t, out.User)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestCurrentSession_RolGuardia(t *testing.T) {
	_, guardUC, sessionUC, _ := newFixtures(t)
	_, err := guardUC.RegisterGuardWithEmail(dto.GuardRegisterRequest{Name: "Luis", Email: "luis@mall.com"})
	require.NoError(t, err)

	out, err := sessionUC.CurrentSession()
	require.NoError(t, err)
	assert.Equal(t, entity.RoleGuard, out.Role)
}

// Sesión con uid que ya no está respaldado por ninguna cuenta (almacén borrado
// externamente): el rol degrada a customer, nunca a un rol privilegiado.
func TestCurrentSession_SesionHuerfanaDegradaACustomer(t *testing.T) {
	_, _, sessionUC, store := newFixtures(t)
	require.NoError(t, store.Sessions().Establish(&entity.SessionUser{UID: "uid-fantasma"}))

	out, err := sessionUC.CurrentSession()
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, out.Role)
}
