package entity

import "time"

// Technology tecnología contratada en la venta (fibra, móvil, etc.). Dato maestro.
type Technology struct {
	ID           string
	Name         string
	Code         string
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
