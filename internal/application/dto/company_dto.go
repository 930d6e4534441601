package dto

import "time"

// CreateCompanyRequest entrada para crear una operadora.
type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required"`
	Code         string `json:"code" validate:"required"`
	IsActive     *bool  `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}

// UpdateCompanyRequest actualización parcial de una operadora.
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	Code         *string `json:"code"`
	IsActive     *bool   `json:"isActive"`
	DisplayOrder *int    `json:"displayOrder"`
}

// CompanyResponse salida de una operadora.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
