package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrUsernameTaken   = errors.New("el nombre de usuario o el email ya están en uso")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("credenciales inválidas")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrAccountInactive = errors.New("cuenta desactivada")
	ErrAccountLocked   = errors.New("cuenta bloqueada")
	ErrTwoFactorCode   = errors.New("código 2FA inválido")
	ErrTwoFactorSetup  = errors.New("2FA ya configurado para este usuario")
)
