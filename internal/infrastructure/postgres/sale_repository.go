package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleCols = `id, asesor_id, company_id, company_sold_id, technology_id, sale_status_id,
	cerrador_id, fidelizador_id, sale_date, client_name, client_dni, client_phone,
	address, extra_info, created_at, updated_at, deleted_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	db *Gateway
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(db *Gateway) *SaleRepo {
	return &SaleRepo{db: db}
}

// Create persiste una venta nueva.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, asesor_id, company_id, company_sold_id, technology_id,
			sale_status_id, cerrador_id, fidelizador_id, sale_date, client_name, client_dni,
			client_phone, address, extra_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(context.Background(), query,
		sale.ID, sale.AsesorID, sale.CompanyID, sale.CompanySoldID, sale.TechnologyID,
		sale.SaleStatusID, sale.CerradorID, sale.FidelizadorID, sale.SaleDate, sale.ClientName,
		sale.ClientDni, sale.ClientPhone, sale.Address, sale.ExtraInfo,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta no eliminada por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.getOne(r.db.Filter("sales", "id = $1"), id)
}

// GetByIDWithDeleted obtiene una venta aunque esté marcada como eliminada.
func (r *SaleRepo) GetByIDWithDeleted(id string) (*entity.Sale, error) {
	return r.getOne("id = $1", id)
}

func (r *SaleRepo) getOne(where string, args ...interface{}) (*entity.Sale, error) {
	query := `SELECT ` + saleCols + ` FROM sales WHERE ` + where
	row := r.db.QueryRow(context.Background(), query, args...)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Update actualiza una venta.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET asesor_id = $2, company_id = $3, company_sold_id = $4,
			technology_id = $5, sale_status_id = $6, cerrador_id = $7, fidelizador_id = $8,
			sale_date = $9, client_name = $10, client_dni = $11, client_phone = $12,
			address = $13, extra_info = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		sale.ID, sale.AsesorID, sale.CompanyID, sale.CompanySoldID, sale.TechnologyID,
		sale.SaleStatusID, sale.CerradorID, sale.FidelizadorID, sale.SaleDate, sale.ClientName,
		sale.ClientDni, sale.ClientPhone, sale.Address, sale.ExtraInfo, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete marca la venta como eliminada (la política reescribe a UPDATE).
func (r *SaleRepo) Delete(id string) error {
	_, err := r.db.Delete(context.Background(), "sales", id)
	return err
}

// Restore limpia la marca de eliminación.
func (r *SaleRepo) Restore(id string) error {
	return r.db.Restore(context.Background(), "sales", id)
}

// List devuelve la página de ventas que cumplen el filtro y el total de coincidencias.
func (r *SaleRepo) List(f repository.SaleFilter) ([]*entity.Sale, int, error) {
	where := ""
	var args []interface{}

	and := func(cond string) {
		if where != "" {
			where += " AND "
		}
		where += cond
	}
	if f.AsesorID != "" {
		args = append(args, f.AsesorID)
		and("asesor_id = $" + strconv.Itoa(len(args)))
	}
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		and("sale_date >= $" + strconv.Itoa(len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		and("sale_date <= $" + strconv.Itoa(len(args)))
	}
	if f.IncludeDeleted {
		// Mencionar deleted_at hace que la política respete la intención del caller.
		and("(deleted_at IS NULL OR deleted_at IS NOT NULL)")
	}
	where = r.db.Filter("sales", where)

	ctx := context.Background()

	var total int
	countQuery := `SELECT COUNT(*) FROM sales WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)
	query := `SELECT ` + saleCols + ` FROM sales WHERE ` + where +
		` ORDER BY sale_date DESC LIMIT $` + strconv.Itoa(len(args)-1) +
		` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// CountByDateRange cuenta ventas no eliminadas con sale_date en [from, to).
// asesorIDs vacío = alcance global.
func (r *SaleRepo) CountByDateRange(asesorIDs []string, from, to time.Time) (int, error) {
	where := "sale_date >= $1 AND sale_date < $2"
	args := []interface{}{from, to}
	if len(asesorIDs) > 0 {
		args = append(args, asesorIDs)
		where += " AND asesor_id = ANY($3)"
	}
	where = r.db.Filter("sales", where)

	var count int
	query := `SELECT COUNT(*) FROM sales WHERE ` + where
	if err := r.db.QueryRow(context.Background(), query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sales by range: %w", err)
	}
	return count, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.AsesorID, &s.CompanyID, &s.CompanySoldID, &s.TechnologyID, &s.SaleStatusID,
		&s.CerradorID, &s.FidelizadorID, &s.SaleDate, &s.ClientName, &s.ClientDni, &s.ClientPhone,
		&s.Address, &s.ExtraInfo, &s.CreatedAt, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
