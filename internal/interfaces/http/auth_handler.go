package http

import (
	"errors"

	"github.com/Drko99-0/goodcall-crm/internal/application/auth"
	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler maneja login, refresh y el enrolamiento de 2FA.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password, totpCode opcional"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Renovar el par de tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RefreshRequest  true  "refreshToken"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "refreshToken es requerido"})
	}
	out, err := h.uc.Refresh(in)
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(out)
}

// EnrollTwoFactor godoc
// @Summary      Generar secreto TOTP para el usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TwoFactorEnrollResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/2fa/enroll [post]
func (h *AuthHandler) EnrollTwoFactor(c *fiber.Ctx) error {
	out, err := h.uc.EnrollTwoFactor(GetUserID(c))
	if err != nil {
		return authError(c, err)
	}
	return c.JSON(out)
}

// VerifyTwoFactor godoc
// @Summary      Activar 2FA verificando un código TOTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.TwoFactorVerifyRequest  true  "token de 6 dígitos"
// @Success      204
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/2fa/verify [post]
func (h *AuthHandler) VerifyTwoFactor(c *fiber.Ctx) error {
	var in dto.TwoFactorVerifyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token es requerido"})
	}
	if err := h.uc.VerifyTwoFactor(GetUserID(c), in); err != nil {
		return authError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// authError mapea los errores sentinel de auth a respuestas HTTP.
func authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrAccountInactive):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_INACTIVE", Message: "cuenta desactivada"})
	case errors.Is(err, domain.ErrAccountLocked):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCOUNT_LOCKED", Message: "cuenta bloqueada por intentos fallidos"})
	case errors.Is(err, domain.ErrTwoFactorCode):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_2FA_CODE", Message: "código de verificación inválido"})
	case errors.Is(err, domain.ErrTwoFactorSetup):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "2FA_NOT_ENROLLED", Message: "el usuario no tiene secreto 2FA pendiente de verificar"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
