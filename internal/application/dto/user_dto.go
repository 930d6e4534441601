package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username           string  `json:"username" validate:"required"`
	Email              string  `json:"email" validate:"required,email"`
	Password           string  `json:"password" validate:"required,min=8"`
	FirstName          string  `json:"firstName" validate:"required"`
	LastName           string  `json:"lastName" validate:"required"`
	Role               string  `json:"role" validate:"required,oneof=developer gerencia coordinador asesor cerrador fidelizador"`
	CoordinatorID      *string `json:"coordinatorId"`
	MustChangePassword bool    `json:"mustChangePassword"`
}

// UpdateUserRequest entrada de actualización parcial. Punteros nil = campo sin tocar.
// IsLocked=false es el desbloqueo administrativo: limpia lockedAt y el contador de intentos.
type UpdateUserRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Role          *string `json:"role" validate:"omitempty,oneof=developer gerencia coordinador asesor cerrador fidelizador"`
	CoordinatorID *string `json:"coordinatorId"`
	IsActive      *bool   `json:"isActive"`
	IsLocked      *bool   `json:"isLocked"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID                  string     `json:"id"`
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	Role                string     `json:"role"`
	IsActive            bool       `json:"isActive"`
	IsLocked            bool       `json:"isLocked"`
	FailedLoginAttempts int        `json:"failedLoginAttempts"`
	MustChangePassword  bool       `json:"mustChangePassword"`
	TwoFactorEnabled    bool       `json:"twoFactorEnabled"`
	CoordinatorID       *string    `json:"coordinatorId,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
	DeletedAt           *time.Time `json:"deletedAt,omitempty"`
}
