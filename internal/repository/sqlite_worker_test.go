package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkravets/tsekh/internal/testutil"
)

func TestWorkerRepo_RoundTripWithCapabilities(t *testing.T) {
	database := testutil.NewTestDB(t)
	sectionRepo := NewSQLiteSectionRepo(database)
	repo := NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	sec := testutil.NewTestSection("Sewing")
	require.NoError(t, sectionRepo.Create(ctx, sec))

	w := testutil.NewTestWorker("Olena P.",
		testutil.WithSectionAffinity(sec.ID),
		testutil.WithCapabilities("Sewing", "Overlock"))
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Olena P.", got.FullName)
	require.NotNil(t, got.SectionID)
	assert.Equal(t, sec.ID, *got.SectionID)
	assert.ElementsMatch(t, []string{"Sewing", "Overlock"}, got.OperationTypes)
}

func TestWorkerRepo_NoAffinity(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Petro S.")
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SectionID)
	assert.Empty(t, got.OperationTypes)
}

func TestWorkerRepo_UpdateReplacesCapabilities(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Petro S.", testutil.WithCapabilities("Cutting"))
	require.NoError(t, repo.Create(ctx, w))

	w.OperationTypes = []string{"Packing", "Fixing"}
	w.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Packing", "Fixing"}, got.OperationTypes)
}

func TestWorkerRepo_ListOrderedByName(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	for _, name := range []string{"Zoya", "Anna", "Mykola"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestWorker(name)))
	}

	workers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, workers, 3)
	assert.Equal(t, "Anna", workers[0].FullName)
	assert.Equal(t, "Zoya", workers[2].FullName)
}

func TestWorkerRepo_DeleteClearsAssignments(t *testing.T) {
	database := testutil.NewTestDB(t)
	o, sec, opRepo := seedRoute(t, database)
	repo := NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Olena P.")
	require.NoError(t, repo.Create(ctx, w))

	op := testutil.NewTestOperation(o.ID, sec.ID, testutil.WithAssignedWorker(w.ID))
	require.NoError(t, opRepo.Create(ctx, op))

	require.NoError(t, repo.Delete(ctx, w.ID))

	got, err := opRepo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssignedWorkerID, "assignment should null out when the worker goes")
}
