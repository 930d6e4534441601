package usecase

import (
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/application/ports"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
	"github.com/google/uuid"
)

// NotificationUseCase casos de uso de notificaciones. El canal en tiempo real es
// best-effort; el listado HTTP (polling del cliente) es el respaldo durable.
type NotificationUseCase struct {
	repo   repository.NotificationRepository
	events ports.EventPublisher
}

// NewNotificationUseCase construye el caso de uso de notificaciones.
func NewNotificationUseCase(repo repository.NotificationRepository, events ports.EventPublisher) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, events: events}
}

// Create persiste la notificación y la empuja a la sala del usuario destino.
func (uc *NotificationUseCase) Create(in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	n := &entity.Notification{
		ID:                uuid.New().String(),
		UserID:            in.UserID,
		Type:              in.Type,
		Title:             in.Title,
		Message:           in.Message,
		RelatedEntityType: in.RelatedEntityType,
		RelatedEntityID:   in.RelatedEntityID,
		ActionURL:         in.ActionURL,
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Create(n); err != nil {
		return nil, err
	}
	out := toNotificationResponse(n)
	if uc.events != nil {
		uc.events.BroadcastToUser(n.UserID, ports.EventNotification, out)
	}
	return out, nil
}

// ListByUser devuelve las notificaciones del usuario, más recientes primero.
func (uc *NotificationUseCase) ListByUser(userID string) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return items, nil
}

// GetByID obtiene una notificación por ID.
func (uc *NotificationUseCase) GetByID(id string) (*dto.NotificationResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	return toNotificationResponse(n), nil
}

// MarkRead marca la notificación como leída y estampa readAt.
func (uc *NotificationUseCase) MarkRead(id string) (*dto.NotificationResponse, error) {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if err := uc.repo.MarkRead(id, now); err != nil {
		return nil, err
	}
	n.IsRead = true
	n.ReadAt = &now
	return toNotificationResponse(n), nil
}

// Delete elimina la notificación físicamente (sin soft delete).
func (uc *NotificationUseCase) Delete(id string) error {
	n, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:                n.ID,
		UserID:            n.UserID,
		Type:              n.Type,
		Title:             n.Title,
		Message:           n.Message,
		RelatedEntityType: n.RelatedEntityType,
		RelatedEntityID:   n.RelatedEntityID,
		ActionURL:         n.ActionURL,
		IsRead:            n.IsRead,
		ReadAt:            n.ReadAt,
		CreatedAt:         n.CreatedAt,
	}
}
