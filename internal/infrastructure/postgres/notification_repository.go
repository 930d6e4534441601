package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationCols = `id, user_id, type, title, message, related_entity_type, related_entity_id, action_url, is_read, read_at, created_at`

// NotificationRepo implementación del puerto NotificationRepository sobre
// PostgreSQL. Las notificaciones se eliminan físicamente, sin soft delete.
type NotificationRepo struct {
	db *Gateway
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(db *Gateway) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create persiste una notificación.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, title, message, related_entity_type, related_entity_id, action_url, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		n.ID, n.UserID, n.Type, n.Title, n.Message,
		n.RelatedEntityType, n.RelatedEntityID, n.ActionURL, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT ` + notificationCols + ` FROM notifications WHERE id = $1`
	row := r.db.QueryRow(context.Background(), query, id)
	n, err := scanNotification(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// ListByUser devuelve las notificaciones del usuario, más recientes primero.
func (r *NotificationRepo) ListByUser(userID string) ([]*entity.Notification, error) {
	query := `SELECT ` + notificationCols + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// MarkRead marca la notificación como leída en el instante dado.
func (r *NotificationRepo) MarkRead(id string, at time.Time) error {
	query := `UPDATE notifications SET is_read = TRUE, read_at = $2 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id, at)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// Delete elimina físicamente la notificación.
func (r *NotificationRepo) Delete(id string) error {
	query := `DELETE FROM notifications WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(
		&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
		&n.RelatedEntityType, &n.RelatedEntityID, &n.ActionURL,
		&n.IsRead, &n.ReadAt, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
