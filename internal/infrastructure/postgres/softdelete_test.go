package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests SoftDeletePolicy — reescritura de borrados y filtro de lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestPolicy_Managed_SoloTablasDeLaLista(t *testing.T) {
	var p SoftDeletePolicy

	for _, table := range []string{"users", "sales", "companies", "sale_statuses", "technologies"} {
		assert.True(t, p.Managed(table), "%s debe estar gestionada", table)
	}
	for _, table := range []string{"goals", "notifications", "otra_tabla"} {
		assert.False(t, p.Managed(table), "%s no debe estar gestionada", table)
	}
}

func TestPolicy_Filter_WhereVacioAgregaSoloElFiltro(t *testing.T) {
	var p SoftDeletePolicy
	assert.Equal(t, "deleted_at IS NULL", p.Filter("sales", ""))
}

func TestPolicy_Filter_FusionaConWhereExistente(t *testing.T) {
	var p SoftDeletePolicy
	got := p.Filter("sales", "asesor_id = $1")
	assert.Equal(t, "asesor_id = $1 AND deleted_at IS NULL", got)
}

// Si el caller ya condiciona deleted_at, gana su intención: el filtro no se duplica.
func TestPolicy_Filter_CallerGanaSiMencionaDeletedAt(t *testing.T) {
	var p SoftDeletePolicy

	got := p.Filter("sales", "deleted_at IS NOT NULL")
	assert.Equal(t, "deleted_at IS NOT NULL", got)

	// También en mayúsculas o como parte de una expresión más grande.
	got = p.Filter("users", "id = $1 AND DELETED_AT IS NOT NULL")
	assert.Equal(t, "id = $1 AND DELETED_AT IS NOT NULL", got)
}

func TestPolicy_Filter_TablaNoGestionadaPasaTalCual(t *testing.T) {
	var p SoftDeletePolicy
	assert.Equal(t, "", p.Filter("notifications", ""))
	assert.Equal(t, "user_id = $1", p.Filter("goals", "user_id = $1"))
}

func TestPolicy_DeleteSQL_TablaGestionadaReescribeAUpdate(t *testing.T) {
	var p SoftDeletePolicy
	sql := p.DeleteSQL("users")

	assert.Contains(t, sql, "UPDATE users")
	assert.Contains(t, sql, "SET deleted_at = now()")
	assert.Contains(t, sql, "deleted_at IS NULL", "no debe re-eliminar filas ya marcadas")
	assert.NotContains(t, sql, "DELETE FROM")
}

func TestPolicy_DeleteSQL_TablaNoGestionadaBorraFisico(t *testing.T) {
	var p SoftDeletePolicy
	sql := p.DeleteSQL("notifications")

	assert.Equal(t, `DELETE FROM notifications WHERE id = $1`, sql)
}

func TestPolicy_DeleteWhereSQL_ReescrituraSobreWhereArbitrario(t *testing.T) {
	var p SoftDeletePolicy

	sql := p.DeleteWhereSQL("sales", "asesor_id = $1")
	assert.Contains(t, sql, "UPDATE sales")
	assert.Contains(t, sql, "(asesor_id = $1) AND deleted_at IS NULL")

	sql = p.DeleteWhereSQL("notifications", "user_id = $1")
	assert.Equal(t, `DELETE FROM notifications WHERE user_id = $1`, sql)
}

func TestPolicy_RestoreSQL_LimpiaLaMarca(t *testing.T) {
	var p SoftDeletePolicy

	sql, err := p.RestoreSQL("sales")
	require.NoError(t, err)
	assert.Contains(t, sql, "SET deleted_at = NULL")

	_, err = p.RestoreSQL("notifications")
	assert.Error(t, err, "restaurar una tabla sin soft delete debe fallar")
}
