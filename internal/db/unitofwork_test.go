package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkravets/tsekh/internal/db"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertSection(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO sections (id, name, created_at, updated_at)
		VALUES (?, ?, '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`, id, name)
	return err
}

func sectionExists(uow *db.SQLiteUnitOfWork, id string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var name string
		if err := tx.QueryRowContext(ctx, `SELECT name FROM sections WHERE id = ?`, id).Scan(&name); err == nil {
			found = true
		}
		return nil
	})
	return found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSection(ctx, tx, "s1", "Cutting")
	})
	require.NoError(t, err)
	assert.True(t, sectionExists(uow, "s1"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	wantErr := fmt.Errorf("boom")
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSection(ctx, tx, "s2", "Sewing"); err != nil {
			return err
		}
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
	assert.False(t, sectionExists(uow, "s2"), "row should be rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			if err := insertSection(ctx, tx, "s3", "Packing"); err != nil {
				return err
			}
			panic("mid-transaction panic")
		})
	})
	assert.False(t, sectionExists(uow, "s3"), "row should be rolled back after panic")
}
