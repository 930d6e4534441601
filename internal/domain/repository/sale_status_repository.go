package repository

import "github.com/Drko99-0/goodcall-crm/internal/domain/entity"

// SaleStatusRepository define el puerto de persistencia para SaleStatus.
type SaleStatusRepository interface {
	Create(status *entity.SaleStatus) error
	GetByID(id string) (*entity.SaleStatus, error)
	GetByName(name string) (*entity.SaleStatus, error)
	List() ([]*entity.SaleStatus, error)
}
