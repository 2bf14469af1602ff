package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{
		"orders", "sections", "section_operation_types",
		"workers", "worker_capabilities", "order_operations",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration set against an up-to-date schema must
	// not fail.
	require.NoError(t, Migrate(database))
}

func TestMigrate_StatusCheckConstraint(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO orders (id, order_number, product_name, quantity, created_at, updated_at)
		VALUES ('o1', 'N-1', 'Jacket', 10, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO sections (id, name, created_at, updated_at)
		VALUES ('s1', 'Cutting', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO order_operations (id, order_id, section_id, sort_order, status, created_at, updated_at)
		VALUES ('op1', 'o1', 's1', 1, 'bogus', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown status should violate the CHECK constraint")
}

func TestMigrate_SortOrderUniquePerOrder(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	mustExec := func(q string, args ...any) {
		t.Helper()
		_, err := database.Exec(q, args...)
		require.NoError(t, err)
	}
	mustExec(`INSERT INTO orders (id, order_number, product_name, quantity, created_at, updated_at)
		VALUES ('o1', 'N-1', 'Jacket', 10, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	mustExec(`INSERT INTO sections (id, name, created_at, updated_at)
		VALUES ('s1', 'Cutting', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	mustExec(`INSERT INTO order_operations (id, order_id, section_id, sort_order, created_at, updated_at)
		VALUES ('op1', 'o1', 's1', 1, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)

	_, err = database.Exec(`INSERT INTO order_operations (id, order_id, section_id, sort_order, created_at, updated_at)
		VALUES ('op2', 'o1', 's1', 1, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "duplicate sort_order within one order should be rejected")
}
