package auth

import (
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
	"github.com/Drko99-0/goodcall-crm/pkg/jwt"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost factor de coste del hash de passwords.
const bcryptCost = 12

// Config parámetros de autenticación: firma JWT y política de bloqueo.
type Config struct {
	JWTSecret        string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	Issuer           string
	MaxLoginAttempts int // intentos fallidos consecutivos antes de bloquear (default 5)
	TOTPIssuer       string
}

// AuthUseCase casos de uso de autenticación: login con lockout, refresh y 2FA.
type AuthUseCase struct {
	userRepo repository.UserRepository
	cfg      Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, cfg Config) *AuthUseCase {
	if cfg.MaxLoginAttempts <= 0 {
		cfg.MaxLoginAttempts = 5
	}
	return &AuthUseCase{userRepo: userRepo, cfg: cfg}
}

// Login verifica credenciales y emite el par de tokens.
//
// Orden de verificación: existencia → isActive → isLocked → password → 2FA.
// Un password incorrecto incrementa el contador de intentos y, al llegar al
// umbral, bloquea la cuenta; la respuesta es siempre ErrUnauthorized para no
// revelar en esa misma llamada que el bloqueo acaba de activarse.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	if user.IsLocked {
		return nil, domain.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if err := uc.handleFailedLogin(user.ID); err != nil {
			return nil, err
		}
		return nil, domain.ErrUnauthorized
	}

	if user.TwoFactorEnabled {
		if in.TotpCode == "" || !totp.Validate(in.TotpCode, user.TwoFactorSecret) {
			return nil, domain.ErrUnauthorized
		}
	}

	if err := uc.userRepo.ResetFailedAttempts(user.ID); err != nil {
		return nil, err
	}

	return uc.tokenResponse(user)
}

// Refresh valida el refresh token, vuelve a comprobar el estado de la cuenta
// y emite un par nuevo.
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.LoginResponse, error) {
	userID, _, _, err := jwt.Parse(uc.cfg.JWTSecret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	if user.IsLocked {
		return nil, domain.ErrAccountLocked
	}
	return uc.tokenResponse(user)
}

// EnrollTwoFactor genera y guarda un secreto TOTP para el usuario. El 2FA no
// queda activo hasta que VerifyTwoFactor confirme el primer código.
func (uc *AuthUseCase) EnrollTwoFactor(userID string) (*dto.TwoFactorEnrollResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.TwoFactorEnabled {
		return nil, domain.ErrTwoFactorSetup
	}
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      uc.cfg.TOTPIssuer,
		AccountName: user.Username,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.SetTwoFactorSecret(user.ID, key.Secret()); err != nil {
		return nil, err
	}
	return &dto.TwoFactorEnrollResponse{Secret: key.Secret(), URL: key.URL()}, nil
}

// VerifyTwoFactor valida el código contra el secreto enrolado y activa el 2FA.
func (uc *AuthUseCase) VerifyTwoFactor(userID string, in dto.TwoFactorVerifyRequest) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.TwoFactorSecret == "" {
		return domain.ErrTwoFactorCode
	}
	if user.TwoFactorEnabled {
		return domain.ErrTwoFactorSetup
	}
	if !totp.Validate(in.Token, user.TwoFactorSecret) {
		return domain.ErrTwoFactorCode
	}
	return uc.userRepo.EnableTwoFactor(user.ID)
}

// HashPassword hashea un password con el coste configurado del sistema.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (uc *AuthUseCase) handleFailedLogin(userID string) error {
	attempts, err := uc.userRepo.IncrementFailedAttempts(userID)
	if err != nil {
		return err
	}
	if attempts >= uc.cfg.MaxLoginAttempts {
		return uc.userRepo.Lock(userID, time.Now())
	}
	return nil
}

func (uc *AuthUseCase) tokenResponse(user *entity.User) (*dto.LoginResponse, error) {
	access, refresh, err := jwt.GeneratePair(
		uc.cfg.JWTSecret, user.ID, user.Username, user.Role, uc.cfg.Issuer,
		uc.cfg.AccessTTL, uc.cfg.RefreshTTL,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		User: dto.LoginUser{
			ID:                 user.ID,
			Username:           user.Username,
			Email:              user.Email,
			Role:               user.Role,
			MustChangePassword: user.MustChangePassword,
		},
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
