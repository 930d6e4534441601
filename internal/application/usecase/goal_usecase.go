package usecase

import (
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/application/ports"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
	"github.com/google/uuid"
)

// GoalUseCase casos de uso de objetivos de venta. El progreso (currentSales) se
// calcula en cada lectura contando ventas no eliminadas del mes; no hay caché
// ni contador incremental.
type GoalUseCase struct {
	repo     repository.GoalRepository
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
	events   ports.EventPublisher
}

// NewGoalUseCase construye el caso de uso de objetivos.
func NewGoalUseCase(repo repository.GoalRepository, saleRepo repository.SaleRepository, userRepo repository.UserRepository, events ports.EventPublisher) *GoalUseCase {
	return &GoalUseCase{repo: repo, saleRepo: saleRepo, userRepo: userRepo, events: events}
}

// Create da de alta un objetivo. Los tipos coordinador y asesor requieren targetUserId.
func (uc *GoalUseCase) Create(in dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	if !entity.ValidGoalType(in.GoalType) || in.Month < 1 || in.Month > 12 {
		return nil, domain.ErrInvalidInput
	}
	if in.GoalType != entity.GoalGlobal && in.TargetUserID == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	goal := &entity.Goal{
		ID:           uuid.New().String(),
		GoalType:     in.GoalType,
		TargetUserID: in.TargetUserID,
		Year:         in.Year,
		Month:        in.Month,
		TargetSales:  in.TargetSales,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(goal); err != nil {
		return nil, err
	}
	out, err := uc.respond(goal)
	if err != nil {
		return nil, err
	}
	uc.publish(out)
	return out, nil
}

// GetByID obtiene un objetivo con su progreso calculado.
func (uc *GoalUseCase) GetByID(id string) (*dto.GoalResponse, error) {
	goal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, domain.ErrNotFound
	}
	return uc.respond(goal)
}

// List lista objetivos (año/mes descendentes) con progreso calculado por cada uno.
func (uc *GoalUseCase) List(q dto.QueryGoalsRequest) ([]dto.GoalResponse, error) {
	goals, err := uc.repo.List(repository.GoalFilter{
		Year:     q.Year,
		Month:    q.Month,
		UserID:   q.UserID,
		GoalType: q.GoalType,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		out, err := uc.respond(g)
		if err != nil {
			return nil, err
		}
		items = append(items, *out)
	}
	return items, nil
}

// Update solo permite ajustar la meta de ventas.
func (uc *GoalUseCase) Update(id string, in dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	goal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, domain.ErrNotFound
	}
	if in.TargetSales != nil {
		goal.TargetSales = *in.TargetSales
	}
	goal.UpdatedAt = time.Now()
	if err := uc.repo.Update(goal); err != nil {
		return nil, err
	}
	out, err := uc.respond(goal)
	if err != nil {
		return nil, err
	}
	uc.publish(out)
	return out, nil
}

// CurrentSales cuenta las ventas no eliminadas del mes calendario según el
// alcance del objetivo: asesor (un solo asesor), coordinador (todos los
// asesores del coordinador, excluyendo asesores eliminados) o global.
func (uc *GoalUseCase) CurrentSales(goalType string, targetUserID *string, year, month int) (int, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	var asesorIDs []string
	switch {
	case goalType == entity.GoalAsesor && targetUserID != nil:
		asesorIDs = []string{*targetUserID}
	case goalType == entity.GoalCoordinador && targetUserID != nil:
		ids, err := uc.userRepo.ListAsesorIDs(*targetUserID)
		if err != nil {
			return 0, err
		}
		if len(ids) == 0 {
			return 0, nil
		}
		asesorIDs = ids
	}

	return uc.saleRepo.CountByDateRange(asesorIDs, from, to)
}

func (uc *GoalUseCase) respond(g *entity.Goal) (*dto.GoalResponse, error) {
	current, err := uc.CurrentSales(g.GoalType, g.TargetUserID, g.Year, g.Month)
	if err != nil {
		return nil, err
	}
	out := &dto.GoalResponse{
		ID:           g.ID,
		GoalType:     g.GoalType,
		TargetUserID: g.TargetUserID,
		Year:         g.Year,
		Month:        g.Month,
		TargetSales:  g.TargetSales,
		CurrentSales: current,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
	if g.TargetUserID != nil {
		summaries, err := uc.userRepo.Summaries([]string{*g.TargetUserID})
		if err != nil {
			return nil, err
		}
		if a, ok := summaries[*g.TargetUserID]; ok {
			out.TargetUser = &dto.AsesorSummary{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName, Username: a.Username}
		}
	}
	return out, nil
}

func (uc *GoalUseCase) publish(g *dto.GoalResponse) {
	if uc.events != nil {
		uc.events.BroadcastAll(ports.EventGoalUpdate, g)
	}
}
