package dto

import "time"

// TechnologyResponse salida de una tecnología (dato maestro, solo lectura por API).
type TechnologyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SaleStatusResponse salida de un estado de venta.
type SaleStatusResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	Color          string    `json:"color"`
	IsActiveStatus bool      `json:"isActiveStatus"`
	IsFinal        bool      `json:"isFinal"`
	DisplayOrder   int       `json:"displayOrder"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
