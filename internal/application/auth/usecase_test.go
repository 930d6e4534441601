package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByIDWithDeleted(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	for _, u := range r.users {
		if (u.Username == username || u.Email == email) && u.DeletedAt == nil {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.DeletedAt == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if u, ok := r.users[id]; ok {
		now := time.Now()
		u.DeletedAt = &now
	}
	return nil
}

func (r *fakeUserRepo) Restore(id string) error {
	if u, ok := r.users[id]; ok {
		u.DeletedAt = nil
	}
	return nil
}

func (r *fakeUserRepo) IncrementFailedAttempts(id string) (int, error) {
	u := r.users[id]
	u.FailedLoginAttempts++
	return u.FailedLoginAttempts, nil
}

func (r *fakeUserRepo) Lock(id string, at time.Time) error {
	u := r.users[id]
	u.IsLocked = true
	u.LockedAt = &at
	return nil
}

func (r *fakeUserRepo) ResetFailedAttempts(id string) error {
	u := r.users[id]
	u.FailedLoginAttempts = 0
	return nil
}

func (r *fakeUserRepo) SetTwoFactorSecret(id, secret string) error {
	r.users[id].TwoFactorSecret = secret
	return nil
}

func (r *fakeUserRepo) EnableTwoFactor(id string) error {
	r.users[id].TwoFactorEnabled = true
	return nil
}

func (r *fakeUserRepo) ListAsesorIDs(coordinatorID string) ([]string, error) {
	var ids []string
	for _, u := range r.users {
		if u.CoordinatorID != nil && *u.CoordinatorID == coordinatorID && u.DeletedAt == nil {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

func (r *fakeUserRepo) Summaries(ids []string) (map[string]entity.SaleAsesor, error) {
	out := make(map[string]entity.SaleAsesor)
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = entity.SaleAsesor{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Username: u.Username}
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testPassword = "Password123!"

func testConfig() Config {
	return Config{
		JWTSecret:        "secret-de-pruebas",
		AccessTTL:        time.Hour,
		RefreshTTL:       7 * 24 * time.Hour,
		Issuer:           "goodcall-crm-test",
		MaxLoginAttempts: 5,
		TOTPIssuer:       "GoodCall Test",
	}
}

func activeUser(t *testing.T) *entity.User {
	t.Helper()
	hash, err := HashPassword(testPassword)
	require.NoError(t, err)
	return &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Username:     "asesor1",
		Email:        "asesor1@goodcall.com",
		PasswordHash: hash,
		FirstName:    "Ana",
		LastName:     "García",
		Role:         entity.RoleAsesor,
		IsActive:     true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de login y bloqueo por intentos fallidos
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesCorrectas_EmiteTokens(t *testing.T) {
	user := activeUser(t)
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	out, err := uc.Login(dto.LoginRequest{Username: "asesor1", Password: testPassword})
	require.NoError(t, err)

	assert.Equal(t, user.ID, out.User.ID)
	assert.Equal(t, entity.RoleAsesor, out.User.Role)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.NotEqual(t, out.AccessToken, out.RefreshToken)
}

func TestLogin_UsuarioInexistente_Unauthorized(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	user := activeUser(t)
	user.IsActive = false
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "asesor1", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestLogin_PasswordIncorrecto_IncrementaContador(t *testing.T) {
	user := activeUser(t)
	repo := newFakeUserRepo(user)
	uc := NewAuthUseCase(repo, testConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "asesor1", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, user.FailedLoginAttempts)
	assert.False(t, user.IsLocked)
}

// Al quinto fallo consecutivo la cuenta se bloquea, pero la respuesta sigue
// siendo la genérica de credenciales inválidas: el caller no distingue el
// intento que activó el bloqueo.
func TestLogin_QuintoFalloBloqueaSinDelatarlo(t *testing.T) {
	user := activeUser(t)
	repo := newFakeUserRepo(user)
	uc := NewAuthUseCase(repo, testConfig())

	for i := 0; i < 5; i++ {
		_, err := uc.Login(dto.LoginRequest{Username: "asesor1", Password: "mal"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "intento %d", i+1)
	}

	assert.True(t, user.IsLocked, "la cuenta debe quedar bloqueada al quinto fallo")
	require.NotNil(t, user.LockedAt)

	// El siguiente intento, incluso con el password correcto, ya delata el bloqueo.
	_, err := uc.Login(dto.LoginRequest{Username: "asesor1", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
}

func TestLogin_ExitoReiniciaElContador(t *testing.T) {
	user := activeUser(t)
	user.FailedLoginAttempts = 3
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	_, err := uc.Login(dto.LoginRequest{Username: "asesor1", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, 0, user.FailedLoginAttempts)
}

func TestLogin_Con2FAActivo_RequiereCodigo(t *testing.T) {
	user := activeUser(t)
	user.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	user.TwoFactorEnabled = true
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	// Sin código → rechazado.
	_, err := uc.Login(dto.LoginRequest{Username: "asesor1", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Código inválido → rechazado.
	_, err = uc.Login(dto.LoginRequest{Username: "asesor1", Password: testPassword, TotpCode: "000000"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de refresh y 2FA
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_TokenValido_EmiteParNuevo(t *testing.T) {
	user := activeUser(t)
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	login, err := uc.Login(dto.LoginRequest{Username: "asesor1", Password: testPassword})
	require.NoError(t, err)

	out, err := uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, user.ID, out.User.ID)
	assert.NotEmpty(t, out.AccessToken)
}

func TestRefresh_CuentaBloqueadaDespuesDelLogin(t *testing.T) {
	user := activeUser(t)
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	login, err := uc.Login(dto.LoginRequest{Username: "asesor1", Password: testPassword})
	require.NoError(t, err)

	// Si la cuenta se bloquea entre medias, el refresh ya no sirve.
	user.IsLocked = true
	_, err = uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
}

func TestRefresh_TokenBasura_Unauthorized(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(activeUser(t)), testConfig())

	_, err := uc.Refresh(dto.RefreshRequest{RefreshToken: "no.es.un.jwt"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnrollTwoFactor_GuardaSecretoSinActivar(t *testing.T) {
	user := activeUser(t)
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	out, err := uc.EnrollTwoFactor(user.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, out.Secret)
	assert.Contains(t, out.URL, "otpauth://")
	assert.Equal(t, out.Secret, user.TwoFactorSecret)
	assert.False(t, user.TwoFactorEnabled, "el 2FA no se activa hasta verificar el primer código")
}

func TestEnrollTwoFactor_YaActivo_Rechazado(t *testing.T) {
	user := activeUser(t)
	user.TwoFactorEnabled = true
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	_, err := uc.EnrollTwoFactor(user.ID)
	assert.ErrorIs(t, err, domain.ErrTwoFactorSetup)
}

func TestVerifyTwoFactor_SinSecretoEnrolado(t *testing.T) {
	user := activeUser(t)
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	err := uc.VerifyTwoFactor(user.ID, dto.TwoFactorVerifyRequest{Token: "123456"})
	assert.ErrorIs(t, err, domain.ErrTwoFactorCode)
}

func TestVerifyTwoFactor_CodigoInvalido(t *testing.T) {
	user := activeUser(t)
	user.TwoFactorSecret = "JBSWY3DPEHPK3PXP"
	uc := NewAuthUseCase(newFakeUserRepo(user), testConfig())

	err := uc.VerifyTwoFactor(user.ID, dto.TwoFactorVerifyRequest{Token: "000000"})
	assert.ErrorIs(t, err, domain.ErrTwoFactorCode)
	assert.False(t, user.TwoFactorEnabled)
}
