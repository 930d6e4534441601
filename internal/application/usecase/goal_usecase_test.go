package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: objetivos, ventas y usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeGoalRepo struct {
	goals map[string]*entity.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[string]*entity.Goal)}
}

func (r *fakeGoalRepo) Create(g *entity.Goal) error {
	for _, existing := range r.goals {
		if existing.GoalType == g.GoalType && existing.Year == g.Year && existing.Month == g.Month &&
			equalPtr(existing.TargetUserID, g.TargetUserID) {
			return domain.ErrDuplicate
		}
	}
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) GetByID(id string) (*entity.Goal, error) {
	return r.goals[id], nil
}

func (r *fakeGoalRepo) Update(g *entity.Goal) error {
	r.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) List(f repository.GoalFilter) ([]*entity.Goal, error) {
	var out []*entity.Goal
	for _, g := range r.goals {
		if f.Year != 0 && g.Year != f.Year {
			continue
		}
		if f.Month != 0 && g.Month != f.Month {
			continue
		}
		if f.GoalType != "" && g.GoalType != f.GoalType {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// fakeSaleRepo solo implementa el conteo por rango; el resto no se usa desde goals.
type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error                  { r.sales = append(r.sales, s); return nil }
func (r *fakeSaleRepo) GetByID(string) (*entity.Sale, error)         { return nil, nil }
func (r *fakeSaleRepo) GetByIDWithDeleted(string) (*entity.Sale, error) { return nil, nil }
func (r *fakeSaleRepo) Update(*entity.Sale) error                    { return nil }
func (r *fakeSaleRepo) Delete(string) error                          { return nil }
func (r *fakeSaleRepo) Restore(string) error                         { return nil }
func (r *fakeSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, int, error) {
	return nil, 0, nil
}

func (r *fakeSaleRepo) CountByDateRange(asesorIDs []string, from, to time.Time) (int, error) {
	allowed := make(map[string]bool, len(asesorIDs))
	for _, id := range asesorIDs {
		allowed[id] = true
	}
	count := 0
	for _, s := range r.sales {
		if s.DeletedAt != nil {
			continue
		}
		if s.SaleDate.Before(from) || !s.SaleDate.Before(to) {
			continue
		}
		if len(asesorIDs) > 0 && !allowed[s.AsesorID] {
			continue
		}
		count++
	}
	return count, nil
}

// fakeTeamRepo implementa el puerto de usuarios con un equipo fijo por coordinador.
type fakeTeamRepo struct {
	team    map[string][]string              // coordinatorID → asesor IDs vivos
	summary map[string]entity.SaleAsesor
}

func (r *fakeTeamRepo) Create(*entity.User) error                          { return nil }
func (r *fakeTeamRepo) GetByID(string) (*entity.User, error)               { return nil, nil }
func (r *fakeTeamRepo) GetByIDWithDeleted(string) (*entity.User, error)    { return nil, nil }
func (r *fakeTeamRepo) GetByUsername(string) (*entity.User, error)         { return nil, nil }
func (r *fakeTeamRepo) GetByUsernameOrEmail(string, string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeTeamRepo) List() ([]*entity.User, error)              { return nil, nil }
func (r *fakeTeamRepo) Update(*entity.User) error                  { return nil }
func (r *fakeTeamRepo) Delete(string) error                        { return nil }
func (r *fakeTeamRepo) Restore(string) error                       { return nil }
func (r *fakeTeamRepo) IncrementFailedAttempts(string) (int, error) { return 0, nil }
func (r *fakeTeamRepo) Lock(string, time.Time) error               { return nil }
func (r *fakeTeamRepo) ResetFailedAttempts(string) error           { return nil }
func (r *fakeTeamRepo) SetTwoFactorSecret(string, string) error    { return nil }
func (r *fakeTeamRepo) EnableTwoFactor(string) error               { return nil }

func (r *fakeTeamRepo) ListAsesorIDs(coordinatorID string) ([]string, error) {
	return r.team[coordinatorID], nil
}

func (r *fakeTeamRepo) Summaries(ids []string) (map[string]entity.SaleAsesor, error) {
	out := make(map[string]entity.SaleAsesor)
	for _, id := range ids {
		if a, ok := r.summary[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func saleOn(asesorID string, date time.Time, deleted bool) *entity.Sale {
	s := &entity.Sale{AsesorID: asesorID, SaleDate: date, ClientName: "cliente"}
	if deleted {
		now := time.Now()
		s.DeletedAt = &now
	}
	return s
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tests de progreso (currentSales)
// ──────────────────────────────────────────────────────────────────────────────

// Objetivo de coordinador para marzo 2024: cuentan las ventas vivas de todo el
// equipo dentro del mes; quedan fuera las ventas eliminadas, las de otros meses
// y las de asesores ajenos al equipo.
func TestCurrentSales_Coordinador_MarzoDe2024(t *testing.T) {
	march := func(day int) time.Time {
		return time.Date(2024, time.March, day, 12, 0, 0, 0, time.Local)
	}
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleOn("asesor-a", march(1), false),
		saleOn("asesor-a", march(15), false),
		saleOn("asesor-b", march(31), false),
		saleOn("asesor-b", march(10), true),                                          // eliminada
		saleOn("asesor-a", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local), false), // fuera del mes
		saleOn("asesor-externo", march(20), false),                                   // de otro equipo
	}}
	userRepo := &fakeTeamRepo{team: map[string][]string{
		"coord-1": {"asesor-a", "asesor-b"},
	}}
	uc := NewGoalUseCase(newFakeGoalRepo(), saleRepo, userRepo, nil)

	got, err := uc.CurrentSales(entity.GoalCoordinador, strPtr("coord-1"), 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestCurrentSales_CoordinadorSinEquipo_EsCero(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleOn("asesor-a", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local), false),
	}}
	userRepo := &fakeTeamRepo{team: map[string][]string{}}
	uc := NewGoalUseCase(newFakeGoalRepo(), saleRepo, userRepo, nil)

	got, err := uc.CurrentSales(entity.GoalCoordinador, strPtr("coord-sin-equipo"), 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, got, "un coordinador sin asesores no suma ventas de nadie")
}

func TestCurrentSales_Global_CuentaTodosLosAsesores(t *testing.T) {
	march := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleOn("asesor-a", march, false),
		saleOn("asesor-b", march, false),
		saleOn("asesor-c", march, true), // eliminada
	}}
	uc := NewGoalUseCase(newFakeGoalRepo(), saleRepo, &fakeTeamRepo{}, nil)

	got, err := uc.CurrentSales(entity.GoalGlobal, nil, 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCurrentSales_Asesor_SoloSusVentas(t *testing.T) {
	march := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleOn("asesor-a", march, false),
		saleOn("asesor-b", march, false),
	}}
	uc := NewGoalUseCase(newFakeGoalRepo(), saleRepo, &fakeTeamRepo{}, nil)

	got, err := uc.CurrentSales(entity.GoalAsesor, strPtr("asesor-a"), 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de alta y lectura de objetivos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateGoal_AsesorSinTargetUser_Invalido(t *testing.T) {
	uc := NewGoalUseCase(newFakeGoalRepo(), &fakeSaleRepo{}, &fakeTeamRepo{}, nil)

	_, err := uc.Create(dto.CreateGoalRequest{
		GoalType: entity.GoalAsesor, Year: 2024, Month: 3, TargetSales: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateGoal_MesFueraDeRango_Invalido(t *testing.T) {
	uc := NewGoalUseCase(newFakeGoalRepo(), &fakeSaleRepo{}, &fakeTeamRepo{}, nil)

	_, err := uc.Create(dto.CreateGoalRequest{
		GoalType: entity.GoalGlobal, Year: 2024, Month: 13, TargetSales: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateGoal_RespuestaIncluyeProgreso(t *testing.T) {
	march := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	saleRepo := &fakeSaleRepo{sales: []*entity.Sale{
		saleOn("asesor-a", march, false),
		saleOn("asesor-b", march, false),
	}}
	uc := NewGoalUseCase(newFakeGoalRepo(), saleRepo, &fakeTeamRepo{}, nil)

	out, err := uc.Create(dto.CreateGoalRequest{
		GoalType: entity.GoalGlobal, Year: 2024, Month: 3, TargetSales: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, out.TargetSales)
	assert.Equal(t, 2, out.CurrentSales)
}

func TestCreateGoal_DuplicadoMismoMes(t *testing.T) {
	uc := NewGoalUseCase(newFakeGoalRepo(), &fakeSaleRepo{}, &fakeTeamRepo{}, nil)

	_, err := uc.Create(dto.CreateGoalRequest{GoalType: entity.GoalGlobal, Year: 2024, Month: 3, TargetSales: 10})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateGoalRequest{GoalType: entity.GoalGlobal, Year: 2024, Month: 3, TargetSales: 20})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestGetGoal_Inexistente_NotFound(t *testing.T) {
	uc := NewGoalUseCase(newFakeGoalRepo(), &fakeSaleRepo{}, &fakeTeamRepo{}, nil)

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGoalResponse_IncluyeResumenDelTargetUser(t *testing.T) {
	userRepo := &fakeTeamRepo{
		summary: map[string]entity.SaleAsesor{
			"asesor-a": {ID: "asesor-a", FirstName: "Ana", LastName: "García", Username: "agarcia"},
		},
	}
	uc := NewGoalUseCase(newFakeGoalRepo(), &fakeSaleRepo{}, userRepo, nil)

	out, err := uc.Create(dto.CreateGoalRequest{
		GoalType: entity.GoalAsesor, TargetUserID: strPtr("asesor-a"),
		Year: 2024, Month: 3, TargetSales: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, out.TargetUser)
	assert.Equal(t, "Ana", out.TargetUser.FirstName)
	assert.Equal(t, "agarcia", out.TargetUser.Username)
}

func TestUpdateGoal_SoloCambiaLaMeta(t *testing.T) {
	uc := NewGoalUseCase(newFakeGoalRepo(), &fakeSaleRepo{}, &fakeTeamRepo{}, nil)

	created, err := uc.Create(dto.CreateGoalRequest{GoalType: entity.GoalGlobal, Year: 2024, Month: 3, TargetSales: 10})
	require.NoError(t, err)

	target := 25
	out, err := uc.Update(created.ID, dto.UpdateGoalRequest{TargetSales: &target})
	require.NoError(t, err)
	assert.Equal(t, 25, out.TargetSales)
	assert.Equal(t, created.GoalType, out.GoalType)
}
