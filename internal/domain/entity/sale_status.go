package entity

import "time"

// SaleStatus estado de una venta (dato maestro). IsFinal es informativo:
// ningún guard impide pasar de un estado final a otro estado.
type SaleStatus struct {
	ID             string
	Name           string
	Code           string
	Color          string
	IsActiveStatus bool
	IsFinal        bool
	DisplayOrder   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}
