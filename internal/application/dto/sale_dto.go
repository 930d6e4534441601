package dto

import "time"

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	AsesorID      string  `json:"asesorId" validate:"required,uuid"`
	CompanyID     string  `json:"companyId" validate:"required,uuid"`
	CompanySoldID *string `json:"companySoldId" validate:"omitempty,uuid"`
	TechnologyID  *string `json:"technologyId" validate:"omitempty,uuid"`
	SaleStatusID  *string `json:"saleStatusId" validate:"omitempty,uuid"`
	CerradorID    *string `json:"cerradorId" validate:"omitempty,uuid"`
	FidelizadorID *string `json:"fidelizadorId" validate:"omitempty,uuid"`
	SaleDate      string  `json:"saleDate" validate:"required"` // RFC 3339 o YYYY-MM-DD
	ClientName    string  `json:"clientName" validate:"required"`
	ClientDni     *string `json:"clientDni"`
	ClientPhone   *string `json:"clientPhone"`
	Address       *string `json:"address"`
	ExtraInfo     *string `json:"extraInfo"`
}

// UpdateSaleRequest actualización parcial de una venta. Punteros nil = campo sin tocar.
type UpdateSaleRequest struct {
	AsesorID      *string `json:"asesorId" validate:"omitempty,uuid"`
	CompanyID     *string `json:"companyId" validate:"omitempty,uuid"`
	CompanySoldID *string `json:"companySoldId" validate:"omitempty,uuid"`
	TechnologyID  *string `json:"technologyId" validate:"omitempty,uuid"`
	SaleStatusID  *string `json:"saleStatusId" validate:"omitempty,uuid"`
	CerradorID    *string `json:"cerradorId" validate:"omitempty,uuid"`
	FidelizadorID *string `json:"fidelizadorId" validate:"omitempty,uuid"`
	SaleDate      *string `json:"saleDate"`
	ClientName    *string `json:"clientName"`
	ClientDni     *string `json:"clientDni"`
	ClientPhone   *string `json:"clientPhone"`
	Address       *string `json:"address"`
	ExtraInfo     *string `json:"extraInfo"`
}

// QuerySalesRequest filtros de listado de ventas.
type QuerySalesRequest struct {
	PageRequest
	AsesorID       string `query:"asesor_id"`
	StartDate      string `query:"start_date"`
	EndDate        string `query:"end_date"`
	IncludeDeleted bool   `query:"include_deleted"`
}

// AsesorSummary resumen del asesor en las respuestas de venta.
type AsesorSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

// SaleResponse salida de una venta, con el resumen del asesor embebido.
type SaleResponse struct {
	ID            string         `json:"id"`
	AsesorID      string         `json:"asesorId"`
	Asesor        *AsesorSummary `json:"asesor,omitempty"`
	CompanyID     string         `json:"companyId"`
	CompanySoldID *string        `json:"companySoldId,omitempty"`
	TechnologyID  *string        `json:"technologyId,omitempty"`
	SaleStatusID  *string        `json:"saleStatusId,omitempty"`
	CerradorID    *string        `json:"cerradorId,omitempty"`
	FidelizadorID *string        `json:"fidelizadorId,omitempty"`
	SaleDate      time.Time      `json:"saleDate"`
	ClientName    string         `json:"clientName"`
	ClientDni     *string        `json:"clientDni,omitempty"`
	ClientPhone   *string        `json:"clientPhone,omitempty"`
	Address       *string        `json:"address,omitempty"`
	ExtraInfo     *string        `json:"extraInfo,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     *time.Time     `json:"deletedAt,omitempty"`
}

// SaleListResponse página de ventas con metadatos.
type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
