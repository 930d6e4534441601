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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyCols = `id, name, code, is_active, display_order, created_at, updated_at, deleted_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db *Gateway
}

// NewCompanyRepository construye el adaptador de persistencia para operadoras.
func NewCompanyRepository(db *Gateway) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una operadora nueva.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, code, is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.Code, company.IsActive, company.DisplayOrder,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una operadora no eliminada.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.getOne(r.db.Filter("companies", "id = $1"), id)
}

// GetByName obtiene una operadora por nombre (chequeo de duplicados).
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	return r.getOne(r.db.Filter("companies", "name = $1"), name)
}

func (r *CompanyRepo) getOne(where string, args ...interface{}) (*entity.Company, error) {
	query := `SELECT ` + companyCols + ` FROM companies WHERE ` + where
	var c entity.Company
	err := r.db.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Name, &c.Code, &c.IsActive, &c.DisplayOrder,
		&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una operadora.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, code = $3, is_active = $4, display_order = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.Code, company.IsActive, company.DisplayOrder, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista operadoras no eliminadas por display_order y nombre.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `SELECT ` + companyCols + ` FROM companies WHERE ` +
		r.db.Filter("companies", "") + ` ORDER BY display_order ASC, name ASC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.IsActive, &c.DisplayOrder,
			&c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
