package entity

import "time"

// Tipos de objetivo.
const (
	GoalGlobal      = "global"
	GoalCoordinador = "coordinador"
	GoalAsesor      = "asesor"
)

// ValidGoalType indica si s es un tipo de objetivo conocido.
func ValidGoalType(s string) bool {
	return s == GoalGlobal || s == GoalCoordinador || s == GoalAsesor
}

// Goal objetivo de ventas para una tupla (tipo, usuario objetivo, año, mes).
// El progreso (currentSales) nunca se almacena: se calcula en cada lectura
// contando ventas no eliminadas dentro del mes.
type Goal struct {
	ID           string
	GoalType     string
	TargetUserID *string
	Year         int
	Month        int
	TargetSales  int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
