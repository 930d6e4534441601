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

// SaleUseCase casos de uso de ventas: registro, listado con filtros, soft delete y restore.
type SaleUseCase struct {
	repo     repository.SaleRepository
	userRepo repository.UserRepository
	events   ports.EventPublisher
}

// NewSaleUseCase construye el caso de uso de ventas.
func NewSaleUseCase(repo repository.SaleRepository, userRepo repository.UserRepository, events ports.EventPublisher) *SaleUseCase {
	return &SaleUseCase{repo: repo, userRepo: userRepo, events: events}
}

// Create registra una venta nueva y emite sale_update a todos los clientes.
func (uc *SaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	saleDate, err := parseSaleDate(in.SaleDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	asesor, err := uc.userRepo.GetByID(in.AsesorID)
	if err != nil {
		return nil, err
	}
	if asesor == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		AsesorID:      in.AsesorID,
		CompanyID:     in.CompanyID,
		CompanySoldID: in.CompanySoldID,
		TechnologyID:  in.TechnologyID,
		SaleStatusID:  in.SaleStatusID,
		CerradorID:    in.CerradorID,
		FidelizadorID: in.FidelizadorID,
		SaleDate:      saleDate,
		ClientName:    in.ClientName,
		ClientDni:     in.ClientDni,
		ClientPhone:   in.ClientPhone,
		Address:       in.Address,
		ExtraInfo:     in.ExtraInfo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(sale); err != nil {
		return nil, err
	}
	out := toSaleResponse(sale, asesorSummary(asesor))
	uc.publish(out)
	return out, nil
}

// GetByID obtiene una venta no eliminada por ID.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return uc.withAsesor(sale)
}

// List devuelve la página de ventas que cumple el filtro, con el resumen del
// asesor embebido. include_deleted=true es el bypass explícito del soft delete.
func (uc *SaleUseCase) List(q dto.QuerySalesRequest) (*dto.SaleListResponse, error) {
	q.DefaultPage()
	f := repository.SaleFilter{
		AsesorID:       q.AsesorID,
		Page:           q.Page,
		Limit:          q.Limit,
		IncludeDeleted: q.IncludeDeleted,
	}
	if q.StartDate != "" {
		t, err := parseSaleDate(q.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f.StartDate = &t
	}
	if q.EndDate != "" {
		t, err := parseSaleDate(q.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f.EndDate = &t
	}

	sales, total, err := uc.repo.List(f)
	if err != nil {
		return nil, err
	}

	// Resúmenes de asesor en una sola consulta (evita N+1 sobre el listado).
	ids := make([]string, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.AsesorID)
	}
	summaries, err := uc.userRepo.Summaries(ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		var sum *dto.AsesorSummary
		if a, ok := summaries[s.AsesorID]; ok {
			sum = &dto.AsesorSummary{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName, Username: a.Username}
		}
		items = append(items, *toSaleResponse(s, sum))
	}
	return &dto.SaleListResponse{Data: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// Update actualización parcial de una venta no eliminada.
func (uc *SaleUseCase) Update(id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if in.AsesorID != nil {
		sale.AsesorID = *in.AsesorID
	}
	if in.CompanyID != nil {
		sale.CompanyID = *in.CompanyID
	}
	if in.CompanySoldID != nil {
		sale.CompanySoldID = in.CompanySoldID
	}
	if in.TechnologyID != nil {
		sale.TechnologyID = in.TechnologyID
	}
	if in.SaleStatusID != nil {
		// Sin máquina de estados: cualquier estado puede seguir a cualquier otro.
		sale.SaleStatusID = in.SaleStatusID
	}
	if in.CerradorID != nil {
		sale.CerradorID = in.CerradorID
	}
	if in.FidelizadorID != nil {
		sale.FidelizadorID = in.FidelizadorID
	}
	if in.SaleDate != nil {
		t, err := parseSaleDate(*in.SaleDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		sale.SaleDate = t
	}
	if in.ClientName != nil {
		sale.ClientName = *in.ClientName
	}
	if in.ClientDni != nil {
		sale.ClientDni = in.ClientDni
	}
	if in.ClientPhone != nil {
		sale.ClientPhone = in.ClientPhone
	}
	if in.Address != nil {
		sale.Address = in.Address
	}
	if in.ExtraInfo != nil {
		sale.ExtraInfo = in.ExtraInfo
	}
	sale.UpdatedAt = time.Now()
	if err := uc.repo.Update(sale); err != nil {
		return nil, err
	}
	out, err := uc.withAsesor(sale)
	if err != nil {
		return nil, err
	}
	uc.publish(out)
	return out, nil
}

// Delete marca la venta como eliminada; desaparece del listado por defecto y de
// los conteos de objetivos.
func (uc *SaleUseCase) Delete(id string) error {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.publish(toSaleResponse(sale, nil))
	return nil
}

// Restore limpia la marca de eliminación de una venta.
func (uc *SaleUseCase) Restore(id string) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByIDWithDeleted(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Restore(id); err != nil {
		return nil, err
	}
	sale.DeletedAt = nil
	out, err := uc.withAsesor(sale)
	if err != nil {
		return nil, err
	}
	uc.publish(out)
	return out, nil
}

func (uc *SaleUseCase) withAsesor(sale *entity.Sale) (*dto.SaleResponse, error) {
	asesor, err := uc.userRepo.GetByID(sale.AsesorID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, asesorSummary(asesor)), nil
}

func (uc *SaleUseCase) publish(s *dto.SaleResponse) {
	if uc.events != nil {
		uc.events.BroadcastAll(ports.EventSaleUpdate, s)
	}
}

// parseSaleDate acepta RFC 3339 o fecha simple YYYY-MM-DD.
func parseSaleDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func asesorSummary(u *entity.User) *dto.AsesorSummary {
	if u == nil {
		return nil
	}
	return &dto.AsesorSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Username: u.Username}
}

func toSaleResponse(s *entity.Sale, asesor *dto.AsesorSummary) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		AsesorID:      s.AsesorID,
		Asesor:        asesor,
		CompanyID:     s.CompanyID,
		CompanySoldID: s.CompanySoldID,
		TechnologyID:  s.TechnologyID,
		SaleStatusID:  s.SaleStatusID,
		CerradorID:    s.CerradorID,
		FidelizadorID: s.FidelizadorID,
		SaleDate:      s.SaleDate,
		ClientName:    s.ClientName,
		ClientDni:     s.ClientDni,
		ClientPhone:   s.ClientPhone,
		Address:       s.Address,
		ExtraInfo:     s.ExtraInfo,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		DeletedAt:     s.DeletedAt,
	}
}
