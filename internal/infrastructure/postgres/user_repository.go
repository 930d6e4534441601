package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/Drko99-0/goodcall-crm/internal/domain/entity"
	"github.com/Drko99-0/goodcall-crm/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userCols = `id, username, email, password_hash, first_name, last_name, role,
	is_active, is_locked, failed_login_attempts, locked_at, must_change_password,
	two_factor_secret, two_factor_enabled, coordinator_id, created_at, updated_at, deleted_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db *Gateway
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *Gateway) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. Devuelve domain.ErrUsernameTaken si el
// username o el email ya existen.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, role,
			is_active, is_locked, failed_login_attempts, must_change_password,
			two_factor_secret, two_factor_enabled, coordinator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.IsActive, user.IsLocked, user.FailedLoginAttempts, user.MustChangePassword,
		nullIfEmpty(user.TwoFactorSecret), user.TwoFactorEnabled, user.CoordinatorID,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID, excluyendo eliminados.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(r.db.Filter("users", "id = $1"), id)
}

// GetByIDWithDeleted obtiene un usuario por ID aunque esté marcado como eliminado.
func (r *UserRepo) GetByIDWithDeleted(id string) (*entity.User, error) {
	return r.getOne("id = $1", id)
}

// GetByUsername obtiene un usuario por username, excluyendo eliminados.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getOne(r.db.Filter("users", "username = $1"), username)
}

// GetByUsernameOrEmail busca un usuario por username o email (chequeo de duplicados).
func (r *UserRepo) GetByUsernameOrEmail(username, email string) (*entity.User, error) {
	return r.getOne(r.db.Filter("users", "(username = $1 OR email = $2)"), username, email)
}

func (r *UserRepo) getOne(where string, args ...interface{}) (*entity.User, error) {
	query := `SELECT ` + userCols + ` FROM users WHERE ` + where
	row := r.db.QueryRow(context.Background(), query, args...)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List lista usuarios no eliminados.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userCols + ` FROM users WHERE ` +
		r.db.Filter("users", "") + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza el perfil y los flags de estado de un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, first_name = $3, last_name = $4, role = $5,
			is_active = $6, is_locked = $7, failed_login_attempts = $8, locked_at = $9,
			must_change_password = $10, coordinator_id = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Email, user.FirstName, user.LastName, user.Role,
		user.IsActive, user.IsLocked, user.FailedLoginAttempts, user.LockedAt,
		user.MustChangePassword, user.CoordinatorID, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete marca el usuario como eliminado (la política reescribe a UPDATE).
func (r *UserRepo) Delete(id string) error {
	_, err := r.db.Delete(context.Background(), "users", id)
	return err
}

// Restore limpia la marca de eliminación.
func (r *UserRepo) Restore(id string) error {
	return r.db.Restore(context.Background(), "users", id)
}

// IncrementFailedAttempts suma un intento fallido y devuelve el contador resultante.
func (r *UserRepo) IncrementFailedAttempts(id string) (int, error) {
	query := `
		UPDATE users SET failed_login_attempts = failed_login_attempts + 1, updated_at = now()
		WHERE id = $1 RETURNING failed_login_attempts`
	var attempts int
	if err := r.db.QueryRow(context.Background(), query, id).Scan(&attempts); err != nil {
		return 0, fmt.Errorf("increment failed attempts: %w", err)
	}
	return attempts, nil
}

// Lock bloquea la cuenta y estampa locked_at.
func (r *UserRepo) Lock(id string, at time.Time) error {
	query := `UPDATE users SET is_locked = TRUE, locked_at = $2, updated_at = now() WHERE id = $1`
	if _, err := r.db.Exec(context.Background(), query, id, at); err != nil {
		return fmt.Errorf("lock user: %w", err)
	}
	return nil
}

// ResetFailedAttempts pone el contador a cero tras un login correcto.
func (r *UserRepo) ResetFailedAttempts(id string) error {
	query := `UPDATE users SET failed_login_attempts = 0, updated_at = now() WHERE id = $1`
	if _, err := r.db.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("reset failed attempts: %w", err)
	}
	return nil
}

// SetTwoFactorSecret guarda el secreto TOTP enrolado (aún sin activar).
func (r *UserRepo) SetTwoFactorSecret(id, secret string) error {
	query := `UPDATE users SET two_factor_secret = $2, two_factor_enabled = FALSE, updated_at = now() WHERE id = $1`
	if _, err := r.db.Exec(context.Background(), query, id, secret); err != nil {
		return fmt.Errorf("set 2fa secret: %w", err)
	}
	return nil
}

// EnableTwoFactor activa el 2FA después de verificar el primer código.
func (r *UserRepo) EnableTwoFactor(id string) error {
	query := `UPDATE users SET two_factor_enabled = TRUE, updated_at = now() WHERE id = $1`
	if _, err := r.db.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("enable 2fa: %w", err)
	}
	return nil
}

// ListAsesorIDs devuelve los IDs de asesores no eliminados de un coordinador.
func (r *UserRepo) ListAsesorIDs(coordinatorID string) ([]string, error) {
	query := `SELECT id FROM users WHERE ` +
		r.db.Filter("users", "coordinator_id = $1")
	rows, err := r.db.Query(context.Background(), query, coordinatorID)
	if err != nil {
		return nil, fmt.Errorf("list asesores: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan asesor id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Summaries devuelve los resúmenes de un conjunto de usuarios (incluye eliminados:
// una venta de un asesor eliminado sigue mostrando quién la hizo).
func (r *UserRepo) Summaries(ids []string) (map[string]entity.SaleAsesor, error) {
	out := make(map[string]entity.SaleAsesor, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	query := `SELECT id, first_name, last_name, username FROM users WHERE id = ANY($1)`
	rows, err := r.db.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("user summaries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a entity.SaleAsesor
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Username); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out[a.ID] = a
	}
	return out, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var secret *string
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role,
		&u.IsActive, &u.IsLocked, &u.FailedLoginAttempts, &u.LockedAt, &u.MustChangePassword,
		&secret, &u.TwoFactorEnabled, &u.CoordinatorID, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	if secret != nil {
		u.TwoFactorSecret = *secret
	}
	return &u, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
