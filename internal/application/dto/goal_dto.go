package dto

import "time"

// CreateGoalRequest entrada para crear un objetivo de ventas.
type CreateGoalRequest struct {
	GoalType     string  `json:"goalType" validate:"required,oneof=global coordinador asesor"`
	TargetUserID *string `json:"targetUserId" validate:"omitempty,uuid"`
	Year         int     `json:"year" validate:"required"`
	Month        int     `json:"month" validate:"required,min=1,max=12"`
	TargetSales  int     `json:"targetSales" validate:"required,min=1"`
}

// UpdateGoalRequest solo la meta es editable.
type UpdateGoalRequest struct {
	TargetSales *int `json:"targetSales"`
}

// QueryGoalsRequest filtros de listado de objetivos.
type QueryGoalsRequest struct {
	Year     int    `query:"year"`
	Month    int    `query:"month"`
	UserID   string `query:"user_id"`
	GoalType string `query:"goal_type"`
}

// GoalResponse salida de un objetivo. CurrentSales se calcula en cada lectura,
// nunca se persiste.
type GoalResponse struct {
	ID           string         `json:"id"`
	GoalType     string         `json:"goalType"`
	TargetUserID *string        `json:"targetUserId,omitempty"`
	TargetUser   *AsesorSummary `json:"targetUser,omitempty"`
	Year         int            `json:"year"`
	Month        int            `json:"month"`
	TargetSales  int            `json:"targetSales"`
	CurrentSales int            `json:"currentSales"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
