package usecase

import (
	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
)

// TechnologyUseCase lecturas del catálogo de tecnologías.
type TechnologyUseCase struct {
	repo repository.TechnologyRepository
}

// NewTechnologyUseCase construye el caso de uso de tecnologías.
func NewTechnologyUseCase(repo repository.TechnologyRepository) *TechnologyUseCase {
	return &TechnologyUseCase{repo: repo}
}

// List lista tecnologías ordenadas por display_order.
func (uc *TechnologyUseCase) List() ([]dto.TechnologyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TechnologyResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTechnologyResponse(t))
	}
	return items, nil
}

// GetByID obtiene una tecnología no eliminada.
func (uc *TechnologyUseCase) GetByID(id string) (*dto.TechnologyResponse, error) {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toTechnologyResponse(t), nil
}

// SaleStatusUseCase lecturas del catálogo de estados de venta.
type SaleStatusUseCase struct {
	repo repository.SaleStatusRepository
}

// NewSaleStatusUseCase construye el caso de uso de estados de venta.
func NewSaleStatusUseCase(repo repository.SaleStatusRepository) *SaleStatusUseCase {
	return &SaleStatusUseCase{repo: repo}
}

// List lista estados ordenados por display_order.
func (uc *SaleStatusUseCase) List() ([]dto.SaleStatusResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleStatusResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleStatusResponse(s))
	}
	return items, nil
}

// GetByID obtiene un estado de venta no eliminado.
func (uc *SaleStatusUseCase) GetByID(id string) (*dto.SaleStatusResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleStatusResponse(s), nil
}

func toTechnologyResponse(t *entity.Technology) *dto.TechnologyResponse {
	if t == nil {
		return nil
	}
	return &dto.TechnologyResponse{
		ID:           t.ID,
		Name:         t.Name,
		Code:         t.Code,
		IsActive:     t.IsActive,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toSaleStatusResponse(s *entity.SaleStatus) *dto.SaleStatusResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleStatusResponse{
		ID:             s.ID,
		Name:           s.Name,
		Code:           s.Code,
		Color:          s.Color,
		IsActiveStatus: s.IsActiveStatus,
		IsFinal:        s.IsFinal,
		DisplayOrder:   s.DisplayOrder,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
