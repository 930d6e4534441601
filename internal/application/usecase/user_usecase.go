package usecase

import (
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/application/auth"
	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/application/ports"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
	"github.com/google/uuid"
)

// UserUseCase casos de uso de gestión de usuarios.
type UserUseCase struct {
	repo   repository.UserRepository
	events ports.EventPublisher
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el emisor de eventos.
func NewUserUseCase(repo repository.UserRepository, events ports.EventPublisher) *UserUseCase {
	return &UserUseCase{repo: repo, events: events}
}

// Create crea un usuario. Devuelve domain.ErrUsernameTaken si el username o el email ya existen.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsernameOrEmail(in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:                 uuid.New().String(),
		Username:           in.Username,
		Email:              in.Email,
		PasswordHash:       hash,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Role:               in.Role,
		IsActive:           true,
		MustChangePassword: in.MustChangePassword,
		CoordinatorID:      in.CoordinatorID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	uc.publish(out)
	return out, nil
}

// GetByID obtiene un usuario por ID. Devuelve domain.ErrNotFound si no existe o está eliminado.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// List lista los usuarios no eliminados.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// Update actualización parcial. IsLocked=false es el desbloqueo administrativo:
// limpia lockedAt y reinicia el contador de intentos fallidos.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.CoordinatorID != nil {
		user.CoordinatorID = in.CoordinatorID
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsLocked != nil {
		user.IsLocked = *in.IsLocked
		if !user.IsLocked {
			user.LockedAt = nil
			user.FailedLoginAttempts = 0
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	uc.publish(out)
	return out, nil
}

// Delete marca el usuario como eliminado (soft delete).
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.publish(toUserResponse(user))
	return nil
}

// Restore limpia la marca de eliminación y vuelve a hacer visible al usuario.
func (uc *UserUseCase) Restore(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByIDWithDeleted(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Restore(id); err != nil {
		return nil, err
	}
	user.DeletedAt = nil
	out := toUserResponse(user)
	uc.publish(out)
	return out, nil
}

func (uc *UserUseCase) publish(u *dto.UserResponse) {
	if uc.events != nil {
		uc.events.BroadcastAll(ports.EventUserUpdate, u)
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Role:                u.Role,
		IsActive:            u.IsActive,
		IsLocked:            u.IsLocked,
		FailedLoginAttempts: u.FailedLoginAttempts,
		MustChangePassword:  u.MustChangePassword,
		TwoFactorEnabled:    u.TwoFactorEnabled,
		CoordinatorID:       u.CoordinatorID,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
		DeletedAt:           u.DeletedAt,
	}
}
