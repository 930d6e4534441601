package repository

import "github.com/Drko99-0/goodcall-crm/internal/domain/entity"

// TechnologyRepository define el puerto de persistencia para Technology.
type TechnologyRepository interface {
	Create(tech *entity.Technology) error
	GetByID(id string) (*entity.Technology, error)
	GetByName(name string) (*entity.Technology, error)
	List() ([]*entity.Technology, error)
}
