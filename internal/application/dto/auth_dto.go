package dto

// LoginRequest entrada para login. TotpCode solo es obligatorio si el usuario tiene 2FA activo.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	TotpCode string `json:"totpCode" validate:"omitempty,len=6"`
}

// LoginUser datos del usuario incluidos en la respuesta de login.
type LoginUser struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"mustChangePassword"`
}

// LoginResponse salida de login: usuario + par de tokens.
type LoginResponse struct {
	User         LoginUser `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}

// RefreshRequest entrada para renovar el par de tokens.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TwoFactorEnrollResponse secreto TOTP y URL otpauth para el autenticador.
type TwoFactorEnrollResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

// TwoFactorVerifyRequest código de verificación para activar el 2FA.
type TwoFactorVerifyRequest struct {
	Token string `json:"token" validate:"required,len=6"`
}
