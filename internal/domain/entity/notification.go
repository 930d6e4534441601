package entity

import "time"

// Notification mensaje por usuario con flag de lectura y deep-link opcional.
// No participa del soft delete: al descartarla se elimina físicamente.
type Notification struct {
	ID                string
	UserID            string
	Type              string
	Title             string
	Message           string
	RelatedEntityType *string
	RelatedEntityID   *string
	ActionURL         *string
	IsRead            bool
	ReadAt            *time.Time
	CreatedAt         time.Time
}
