package entity

import "time"

// Roles válidos para User.
const (
	RoleDeveloper   = "developer"
	RoleGerencia    = "gerencia"
	RoleCoordinador = "coordinador"
	RoleAsesor      = "asesor"
	RoleCerrador    = "cerrador"
	RoleFidelizador = "fidelizador"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	switch s {
	case RoleDeveloper, RoleGerencia, RoleCoordinador, RoleAsesor, RoleCerrador, RoleFidelizador:
		return true
	}
	return false
}

// User representa a un usuario del sistema: credenciales, perfil, rol y estado de bloqueo.
// Los asesores pueden colgar de un coordinador (CoordinatorID, auto-relación).
type User struct {
	ID                  string
	Username            string
	Email               string
	PasswordHash        string // bcrypt cost 12, nunca en claro después de persistir
	FirstName           string
	LastName            string
	Role                string
	IsActive            bool
	IsLocked            bool
	FailedLoginAttempts int
	LockedAt            *time.Time
	MustChangePassword  bool
	TwoFactorSecret     string // secreto TOTP (vacío = no enrolado)
	TwoFactorEnabled    bool   // true solo después de verificar el primer código
	CoordinatorID       *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           *time.Time
}
