package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkravets/tsekh/internal/domain"
	"github.com/vkravets/tsekh/internal/testutil"
)

// seedRoute creates an order with one section and returns both, plus the repos.
func seedRoute(t *testing.T, database *sql.DB) (*domain.Order, *domain.Section, *SQLiteOperationRepo) {
	t.Helper()
	ctx := context.Background()

	orderRepo := NewSQLiteOrderRepo(database)
	sectionRepo := NewSQLiteSectionRepo(database)

	o := testutil.NewTestOrder("Jacket")
	require.NoError(t, orderRepo.Create(ctx, o))
	sec := testutil.NewTestSection("Cutting")
	require.NoError(t, sectionRepo.Create(ctx, sec))

	return o, sec, NewSQLiteOperationRepo(database)
}

func TestOperationRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	o, sec, repo := seedRoute(t, database)
	ctx := context.Background()

	op := testutil.NewTestOperation(o.ID, sec.ID, testutil.WithSortOrder(2), testutil.WithNorm(10, 6.5))
	op.Name = "cut sleeves"
	require.NoError(t, repo.Create(ctx, op))

	got, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.OrderID)
	assert.Equal(t, sec.ID, got.SectionID)
	assert.Equal(t, 2, got.SortOrder)
	assert.Equal(t, 6.5, got.NormPerUnitMin)
	assert.Equal(t, domain.OperationNotStarted, got.Status)
	assert.Nil(t, got.AssignedWorkerID)
	assert.Nil(t, got.ScheduledStartAt)
	assert.Nil(t, got.ScheduledEndAt)
}

func TestOperationRepo_ListByOrderSorted(t *testing.T) {
	database := testutil.NewTestDB(t)
	o, sec, repo := seedRoute(t, database)
	ctx := context.Background()

	// Insert out of order; the repo must return ascending sort_order.
	for _, n := range []int{3, 1, 2} {
		op := testutil.NewTestOperation(o.ID, sec.ID, testutil.WithSortOrder(n))
		require.NoError(t, repo.Create(ctx, op))
	}

	ops, err := repo.ListByOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	for i, op := range ops {
		assert.Equal(t, i+1, op.SortOrder)
	}
}

func TestOperationRepo_ListAssignedWindows(t *testing.T) {
	database := testutil.NewTestDB(t)
	o, sec, repo := seedRoute(t, database)
	workerRepo := NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Olena P.")
	require.NoError(t, workerRepo.Create(ctx, w))

	start := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	assigned := testutil.NewTestOperation(o.ID, sec.ID,
		testutil.WithSortOrder(1),
		testutil.WithAssignedWorker(w.ID),
		testutil.WithWindow(start, end))
	require.NoError(t, repo.Create(ctx, assigned))

	// Scheduled but unassigned: must not appear.
	unassigned := testutil.NewTestOperation(o.ID, sec.ID,
		testutil.WithSortOrder(2),
		testutil.WithWindow(end, end.Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, unassigned))

	// Assigned but not yet scheduled: must not appear either.
	unscheduled := testutil.NewTestOperation(o.ID, sec.ID,
		testutil.WithSortOrder(3),
		testutil.WithAssignedWorker(w.ID))
	require.NoError(t, repo.Create(ctx, unscheduled))

	windows, err := repo.ListAssignedWindows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, assigned.ID, windows[0].OperationID)
	assert.Equal(t, w.ID, windows[0].WorkerID)
	assert.True(t, windows[0].StartAt.Equal(start))
	assert.True(t, windows[0].EndAt.Equal(end))
}

func TestOperationRepo_UpdateSchedulePreservesAssignment(t *testing.T) {
	database := testutil.NewTestDB(t)
	o, sec, repo := seedRoute(t, database)
	workerRepo := NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Iryna K.")
	require.NoError(t, workerRepo.Create(ctx, w))

	op := testutil.NewTestOperation(o.ID, sec.ID, testutil.WithAssignedWorker(w.ID))
	require.NoError(t, repo.Create(ctx, op))

	start := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	// nil worker: timestamps move, assignment stays.
	require.NoError(t, repo.UpdateSchedule(ctx, op.ID, start, end, nil))

	got, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AssignedWorkerID)
	assert.Equal(t, w.ID, *got.AssignedWorkerID)
	require.NotNil(t, got.ScheduledStartAt)
	assert.True(t, got.ScheduledStartAt.Equal(start))
	require.NotNil(t, got.ScheduledEndAt)
	assert.True(t, got.ScheduledEndAt.Equal(end))
}

func TestOperationRepo_UpdateScheduleWithNewWorker(t *testing.T) {
	database := testutil.NewTestDB(t)
	o, sec, repo := seedRoute(t, database)
	workerRepo := NewSQLiteWorkerRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorker("Iryna K.")
	require.NoError(t, workerRepo.Create(ctx, w))

	op := testutil.NewTestOperation(o.ID, sec.ID)
	require.NoError(t, repo.Create(ctx, op))

	start := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateSchedule(ctx, op.ID, start, start.Add(time.Hour), &w.ID))

	got, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AssignedWorkerID)
	assert.Equal(t, w.ID, *got.AssignedWorkerID)
}

func TestOperationRepo_UpdateStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	o, sec, repo := seedRoute(t, database)
	ctx := context.Background()

	op := testutil.NewTestOperation(o.ID, sec.ID)
	require.NoError(t, repo.Create(ctx, op))

	require.NoError(t, repo.UpdateStatus(ctx, op.ID, domain.OperationInProgress, 4))

	got, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OperationInProgress, got.Status)
	assert.Equal(t, 4, got.CompletedQty)

	err = repo.UpdateStatus(ctx, "missing", domain.OperationDone, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOperationRepo_DeleteCascadesWithOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	o, sec, repo := seedRoute(t, database)
	orderRepo := NewSQLiteOrderRepo(database)
	ctx := context.Background()

	op := testutil.NewTestOperation(o.ID, sec.ID)
	require.NoError(t, repo.Create(ctx, op))

	require.NoError(t, orderRepo.Delete(ctx, o.ID))
	_, err := repo.GetByID(ctx, op.ID)
	assert.ErrorIs(t, err, ErrNotFound, "operations should cascade with their order")
}
