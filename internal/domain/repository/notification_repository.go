package repository

import (
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification.
// Las notificaciones no usan soft delete: Delete es eliminación física.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	// ListByUser devuelve las notificaciones del usuario, más recientes primero.
	ListByUser(userID string) ([]*entity.Notification, error)
	MarkRead(id string, at time.Time) error
	Delete(id string) error
}
