package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.SaleStatusRepository = (*SaleStatusRepo)(nil)

const saleStatusCols = `id, name, code, color, is_active_status, is_final, display_order,
	created_at, updated_at, deleted_at`

// SaleStatusRepo implementación del puerto SaleStatusRepository sobre PostgreSQL.
type SaleStatusRepo struct {
	db *Gateway
}

// NewSaleStatusRepository construye el adaptador de persistencia para estados de venta.
func NewSaleStatusRepository(db *Gateway) *SaleStatusRepo {
	return &SaleStatusRepo{db: db}
}

// Create persiste un estado nuevo (usado por el seed).
func (r *SaleStatusRepo) Create(status *entity.SaleStatus) error {
	query := `
		INSERT INTO sale_statuses (id, name, code, color, is_active_status, is_final,
			display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		status.ID, status.Name, status.Code, status.Color, status.IsActiveStatus,
		status.IsFinal, status.DisplayOrder, status.CreatedAt, status.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale status: %w", err)
	}
	return nil
}

// GetByID obtiene un estado no eliminado.
func (r *SaleStatusRepo) GetByID(id string) (*entity.SaleStatus, error) {
	return r.getOne(r.db.Filter("sale_statuses", "id = $1"), id)
}

// GetByName obtiene un estado por nombre.
func (r *SaleStatusRepo) GetByName(name string) (*entity.SaleStatus, error) {
	return r.getOne(r.db.Filter("sale_statuses", "name = $1"), name)
}

func (r *SaleStatusRepo) getOne(where string, args ...interface{}) (*entity.SaleStatus, error) {
	query := `SELECT ` + saleStatusCols + ` FROM sale_statuses WHERE ` + where
	var s entity.SaleStatus
	err := r.db.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.Name, &s.Code, &s.Color, &s.IsActiveStatus, &s.IsFinal, &s.DisplayOrder,
		&s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale status: %w", err)
	}
	return &s, nil
}

// List lista estados no eliminados por display_order.
func (r *SaleStatusRepo) List() ([]*entity.SaleStatus, error) {
	query := `SELECT ` + saleStatusCols + ` FROM sale_statuses WHERE ` +
		r.db.Filter("sale_statuses", "") + ` ORDER BY display_order ASC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sale statuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleStatus
	for rows.Next() {
		var s entity.SaleStatus
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Color, &s.IsActiveStatus, &s.IsFinal,
			&s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan sale status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
