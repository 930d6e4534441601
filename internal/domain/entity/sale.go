package entity

import "time"

// Sale representa una venta registrada por un asesor. Las referencias a estado,
// tecnología, cerrador y fidelizador son opcionales; el estado no tiene máquina de
// transiciones (cualquier estado puede seguir a cualquier otro).
type Sale struct {
	ID            string
	AsesorID      string
	CompanyID     string
	CompanySoldID *string
	TechnologyID  *string
	SaleStatusID  *string
	CerradorID    *string
	FidelizadorID *string
	SaleDate      time.Time
	ClientName    string
	ClientDni     *string
	ClientPhone   *string
	Address       *string
	ExtraInfo     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// SaleAsesor resumen del asesor embebido en las respuestas de ventas.
type SaleAsesor struct {
	ID        string
	FirstName string
	LastName  string
	Username  string
}
