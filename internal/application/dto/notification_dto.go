package dto

import "time"

// CreateNotificationRequest entrada para crear una notificación dirigida a un usuario.
type CreateNotificationRequest struct {
	UserID            string  `json:"userId" validate:"required,uuid"`
	Type              string  `json:"type" validate:"required"`
	Title             string  `json:"title" validate:"required"`
	Message           string  `json:"message" validate:"required"`
	RelatedEntityType *string `json:"relatedEntityType"`
	RelatedEntityID   *string `json:"relatedEntityId"`
	ActionURL         *string `json:"actionUrl"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	Type              string     `json:"type"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	RelatedEntityType *string    `json:"relatedEntityType,omitempty"`
	RelatedEntityID   *string    `json:"relatedEntityId,omitempty"`
	ActionURL         *string    `json:"actionUrl,omitempty"`
	IsRead            bool       `json:"isRead"`
	ReadAt            *time.Time `json:"readAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}
