package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Tablas con soft delete. Lista cerrada: cualquier otra tabla se borra físicamente.
var softDeleteTables = map[string]struct{}{
	"users":         {},
	"sales":         {},
	"companies":     {},
	"sale_statuses": {},
	"technologies":  {},
}

// SoftDeletePolicy reescribe operaciones sobre las tablas de la lista:
// delete pasa a ser update de deleted_at y las lecturas excluyen filas marcadas,
// salvo que el caller ya condicione deleted_at explícitamente.
type SoftDeletePolicy struct{}

// Managed indica si la tabla participa del soft delete.
func (SoftDeletePolicy) Managed(table string) bool {
	_, ok := softDeleteTables[table]
	return ok
}

// Filter fusiona "deleted_at IS NULL" en un fragmento WHERE para tablas
// gestionadas. Si el fragmento ya menciona deleted_at, gana la intención del
// caller y se devuelve sin tocar. Tablas no gestionadas pasan tal cual.
func (p SoftDeletePolicy) Filter(table, where string) string {
	if !p.Managed(table) {
		return where
	}
	if where == "" {
		return "deleted_at IS NULL"
	}
	if strings.Contains(strings.ToLower(where), "deleted_at") {
		return where
	}
	return where + " AND deleted_at IS NULL"
}

// DeleteSQL devuelve la sentencia de borrado por id: para tablas gestionadas es
// un UPDATE que estampa deleted_at; para el resto, DELETE físico.
func (p SoftDeletePolicy) DeleteSQL(table string) string {
	if p.Managed(table) {
		return fmt.Sprintf(
			`UPDATE %s SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
			table,
		)
	}
	return fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)
}

// DeleteWhereSQL variante deleteMany: misma reescritura sobre un WHERE arbitrario.
func (p SoftDeletePolicy) DeleteWhereSQL(table, where string) string {
	if p.Managed(table) {
		return fmt.Sprintf(
			`UPDATE %s SET deleted_at = now(), updated_at = now() WHERE (%s) AND deleted_at IS NULL`,
			table, where,
		)
	}
	return fmt.Sprintf(`DELETE FROM %s WHERE %s`, table, where)
}

// RestoreSQL limpia la marca de eliminación. Solo tiene sentido en tablas gestionadas.
func (p SoftDeletePolicy) RestoreSQL(table string) (string, error) {
	if !p.Managed(table) {
		return "", fmt.Errorf("la tabla %s no usa soft delete", table)
	}
	return fmt.Sprintf(
		`UPDATE %s SET deleted_at = NULL, updated_at = now() WHERE id = $1`,
		table,
	), nil
}

// Gateway es la puerta de acceso a PostgreSQL: pool + política de soft delete.
// Los repositorios reciben el Gateway, nunca el pool directo, de modo que la
// política queda instalada una sola vez —en la construcción— antes de que
// pueda ejecutarse consulta alguna.
type Gateway struct {
	pool   *pgxpool.Pool
	policy SoftDeletePolicy
}

// NewGateway construye el gateway sobre un pool ya conectado.
func NewGateway(pool *pgxpool.Pool) *Gateway {
	return &Gateway{pool: pool}
}

// Query delega en el pool.
func (g *Gateway) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	return g.pool.Query(ctx, sql, args...)
}

// QueryRow delega en el pool.
func (g *Gateway) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return g.pool.QueryRow(ctx, sql, args...)
}

// Exec delega en el pool.
func (g *Gateway) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	return g.pool.Exec(ctx, sql, args...)
}

// Filter aplica la política de soft delete a un fragmento WHERE.
func (g *Gateway) Filter(table, where string) string {
	return g.policy.Filter(table, where)
}

// Delete borra por id aplicando la reescritura de la política. Devuelve las
// filas afectadas (0 = no existía o ya estaba eliminada).
func (g *Gateway) Delete(ctx context.Context, table, id string) (int64, error) {
	tag, err := g.pool.Exec(ctx, g.policy.DeleteSQL(table), id)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteWhere borra todas las filas que cumplen el WHERE, con la misma reescritura.
func (g *Gateway) DeleteWhere(ctx context.Context, table, where string, args ...interface{}) (int64, error) {
	tag, err := g.pool.Exec(ctx, g.policy.DeleteWhereSQL(table, where), args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", table, err)
	}
	return tag.RowsAffected(), nil
}

// Restore limpia deleted_at y vuelve a hacer visible la fila en las consultas por defecto.
func (g *Gateway) Restore(ctx context.Context, table, id string) error {
	sql, err := g.policy.RestoreSQL(table)
	if err != nil {
		return err
	}
	if _, err := g.pool.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("restore %s: %w", table, err)
	}
	return nil
}
