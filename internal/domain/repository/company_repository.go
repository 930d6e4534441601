package repository

import "github.com/Drko99-0/goodcall-crm/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	Update(company *entity.Company) error
	// List ordena por display_order y nombre.
	List() ([]*entity.Company, error)
}
