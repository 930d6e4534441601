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

var _ repository.TechnologyRepository = (*TechnologyRepo)(nil)

const technologyCols = `id, name, code, is_active, display_order, created_at, updated_at, deleted_at`

// TechnologyRepo implementación del puerto TechnologyRepository sobre PostgreSQL.
type TechnologyRepo struct {
	db *Gateway
}

// NewTechnologyRepository construye el adaptador de persistencia para tecnologías.
func NewTechnologyRepository(db *Gateway) *TechnologyRepo {
	return &TechnologyRepo{db: db}
}

// Create persiste una tecnología nueva (usada por el seed).
func (r *TechnologyRepo) Create(tech *entity.Technology) error {
	query := `
		INSERT INTO technologies (id, name, code, is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		tech.ID, tech.Name, tech.Code, tech.IsActive, tech.DisplayOrder,
		tech.CreatedAt, tech.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert technology: %w", err)
	}
	return nil
}

// GetByID obtiene una tecnología no eliminada.
func (r *TechnologyRepo) GetByID(id string) (*entity.Technology, error) {
	return r.getOne(r.db.Filter("technologies", "id = $1"), id)
}

// GetByName obtiene una tecnología por nombre.
func (r *TechnologyRepo) GetByName(name string) (*entity.Technology, error) {
	return r.getOne(r.db.Filter("technologies", "name = $1"), name)
}

func (r *TechnologyRepo) getOne(where string, args ...interface{}) (*entity.Technology, error) {
	query := `SELECT ` + technologyCols + ` FROM technologies WHERE ` + where
	var t entity.Technology
	err := r.db.QueryRow(context.Background(), query, args...).Scan(
		&t.ID, &t.Name, &t.Code, &t.IsActive, &t.DisplayOrder,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get technology: %w", err)
	}
	return &t, nil
}

// List lista tecnologías no eliminadas por display_order.
func (r *TechnologyRepo) List() ([]*entity.Technology, error) {
	query := `SELECT ` + technologyCols + ` FROM technologies WHERE ` +
		r.db.Filter("technologies", "") + ` ORDER BY display_order ASC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Technology
	for rows.Next() {
		var t entity.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.Code, &t.IsActive, &t.DisplayOrder,
			&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan technology: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
