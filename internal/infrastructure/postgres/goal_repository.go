package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.GoalRepository = (*GoalRepo)(nil)

const goalCols = `id, goal_type, target_user_id, year, month, target_sales, created_at, updated_at`

// GoalRepo implementación del puerto GoalRepository sobre PostgreSQL.
// Los objetivos no usan soft delete.
type GoalRepo struct {
	db *Gateway
}

// NewGoalRepository construye el adaptador de persistencia para objetivos.
func NewGoalRepository(db *Gateway) *GoalRepo {
	return &GoalRepo{db: db}
}

// Create persiste un objetivo. Devuelve domain.ErrDuplicate si ya existe uno
// para la misma tupla (tipo, usuario, año, mes).
func (r *GoalRepo) Create(goal *entity.Goal) error {
	query := `
		INSERT INTO goals (id, goal_type, target_user_id, year, month, target_sales, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		goal.ID, goal.GoalType, goal.TargetUserID, goal.Year, goal.Month, goal.TargetSales,
		goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

// GetByID obtiene un objetivo por ID.
func (r *GoalRepo) GetByID(id string) (*entity.Goal, error) {
	query := `SELECT ` + goalCols + ` FROM goals WHERE id = $1`
	var g entity.Goal
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.GoalType, &g.TargetUserID, &g.Year, &g.Month, &g.TargetSales,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

// Update actualiza la meta de un objetivo.
func (r *GoalRepo) Update(goal *entity.Goal) error {
	query := `UPDATE goals SET target_sales = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query, goal.ID, goal.TargetSales, goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	return nil
}

// List lista objetivos filtrados, por año y mes descendentes.
func (r *GoalRepo) List(f repository.GoalFilter) ([]*entity.Goal, error) {
	where := "TRUE"
	var args []interface{}
	if f.Year != 0 {
		args = append(args, f.Year)
		where += " AND year = $" + strconv.Itoa(len(args))
	}
	if f.Month != 0 {
		args = append(args, f.Month)
		where += " AND month = $" + strconv.Itoa(len(args))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		where += " AND target_user_id = $" + strconv.Itoa(len(args))
	}
	if f.GoalType != "" {
		args = append(args, f.GoalType)
		where += " AND goal_type = $" + strconv.Itoa(len(args))
	}

	query := `SELECT ` + goalCols + ` FROM goals WHERE ` + where + ` ORDER BY year DESC, month DESC`
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Goal
	for rows.Next() {
		var g entity.Goal
		if err := rows.Scan(&g.ID, &g.GoalType, &g.TargetUserID, &g.Year, &g.Month,
			&g.TargetSales, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
