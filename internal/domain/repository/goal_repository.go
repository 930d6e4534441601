package repository

import "github.com/Drko99-0/goodcall-crm/internal/domain/entity"

// GoalFilter filtros para el listado de objetivos.
type GoalFilter struct {
	Year     int
	Month    int
	UserID   string
	GoalType string
}

// GoalRepository define el puerto de persistencia para Goal.
type GoalRepository interface {
	Create(goal *entity.Goal) error
	GetByID(id string) (*entity.Goal, error)
	Update(goal *entity.Goal) error
	// List ordena por año y mes descendentes.
	List(f GoalFilter) ([]*entity.Goal, error)
}
