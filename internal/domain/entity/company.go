package entity

import "time"

// Company operadora de telefonía (dato maestro): con la que se firma o a la que se vende.
type Company struct {
	ID           string
	Name         string
	Code         string
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}
