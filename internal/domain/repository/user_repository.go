package repository

import (
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas excluyen registros con soft delete salvo las variantes WithDeleted.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByIDWithDeleted(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByUsernameOrEmail(username, email string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	Restore(id string) error

	// Estado de login (contador de intentos y bloqueo).
	IncrementFailedAttempts(id string) (int, error)
	Lock(id string, at time.Time) error
	ResetFailedAttempts(id string) error
	SetTwoFactorSecret(id, secret string) error
	EnableTwoFactor(id string) error

	// ListAsesorIDs devuelve los IDs de asesores activos (no eliminados) de un coordinador.
	ListAsesorIDs(coordinatorID string) ([]string, error)
	// Summaries devuelve los resúmenes (nombre + username) de un conjunto de usuarios.
	Summaries(ids []string) (map[string]entity.SaleAsesor, error)
}
