package repository

import (
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
)

// SaleFilter filtros para el listado de ventas.
type SaleFilter struct {
	AsesorID       string
	StartDate      *time.Time
	EndDate        *time.Time
	Page           int
	Limit          int
	IncludeDeleted bool // bypass explícito del soft delete
}

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	GetByIDWithDeleted(id string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
	Restore(id string) error
	// List devuelve la página y el total de ventas que cumplen el filtro.
	List(f SaleFilter) ([]*entity.Sale, int, error)
	// CountByDateRange cuenta ventas no eliminadas con sale_date en [from, to).
	// asesorIDs vacío o nil = sin filtro de asesor (alcance global).
	CountByDateRange(asesorIDs []string, from, to time.Time) (int, error)
}
