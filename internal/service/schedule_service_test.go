package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkravets/tsekh/internal/domain"
	"github.com/vkravets/tsekh/internal/repository"
	"github.com/vkravets/tsekh/internal/testutil"
)

// helper to set up all repos from a test DB
func setupRepos(t *testing.T) (
	repository.OrderRepo,
	repository.OperationRepo,
	repository.SectionRepo,
	repository.WorkerRepo,
	*sql.DB,
) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteOrderRepo(database),
		repository.NewSQLiteOperationRepo(database),
		repository.NewSQLiteSectionRepo(database),
		repository.NewSQLiteWorkerRepo(database),
		database
}

func newScheduleServiceAt(orders repository.OrderRepo, operations repository.OperationRepo, sections repository.SectionRepo, workers repository.WorkerRepo, now time.Time) ScheduleService {
	svc := NewScheduleService(orders, operations, sections, workers).(*scheduleService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestScheduleOrder_SequentialChain(t *testing.T) {
	orders, operations, sections, workers, _ := setupRepos(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	o := testutil.NewTestOrder("Jacket", testutil.WithStartDate(base))
	require.NoError(t, orders.Create(ctx, o))
	sec := testutil.NewTestSection("Cutting")
	require.NoError(t, sections.Create(ctx, sec))

	// 10 units at 6 min each twice, then 20 units at 3 min.
	for _, op := range []*domain.Operation{
		testutil.NewTestOperation(o.ID, sec.ID, testutil.WithSortOrder(1), testutil.WithNorm(10, 6)),
		testutil.NewTestOperation(o.ID, sec.ID, testutil.WithSortOrder(2), testutil.WithNorm(10, 6)),
		testutil.NewTestOperation(o.ID, sec.ID, testutil.WithSortOrder(3), testutil.WithNorm(20, 3)),
	} {
		require.NoError(t, operations.Create(ctx, op))
	}

	svc := newScheduleServiceAt(orders, operations, sections, workers, base.Add(48*time.Hour))
	require.NoError(t, svc.ScheduleOrder(ctx, o.ID, false))

	got, err := operations.ListByOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// First operation starts at the order's start date, not at "now".
	require.True(t, got[0].Scheduled())
	assert.True(t, got[0].ScheduledStartAt.Equal(base))
	assert.True(t, got[0].ScheduledEndAt.Equal(base.Add(60*time.Minute)))

	// Each operation starts exactly when its predecessor ends.
	for i := 1; i < len(got); i++ {
		require.True(t, got[i].Scheduled())
		assert.True(t, got[i].ScheduledStartAt.Equal(*got[i-1].ScheduledEndAt),
			"operation %d must start when %d ends", i+1, i)
	}
	assert.True(t, got[2].ScheduledEndAt.Equal(base.Add(3*time.Hour)))
}

func TestScheduleOrder_NoStartDateUsesNow(t *testing.T) {
	orders, operations, sections, workers, _ := setupRepos(t)
	ctx := context.Background()

	o := testutil.NewTestOrder("Trousers")
	require.NoError(t, orders.Create(ctx, o))
	sec := testutil.NewTestSection("Sewing")
	require.NoError(t, sections.Create(ctx, sec))
	require.NoError(t, operations.Create(ctx, testutil.NewTestOperation(o.ID, sec.ID)))

	now := time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)
	svc := newScheduleServiceAt(orders, operations, sections, workers, now)
	require.NoError(t, svc.ScheduleOrder(ctx, o.ID, false))

	got, err := operations.ListByOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, got[0].ScheduledStartAt.Equal(now))
}

func TestScheduleOrder_ZeroNormFallsBackToHour(t *testing.T) {
	orders, operations, sections, workers, _ := setupRepos(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	o := testutil.NewTestOrder("Shirt", testutil.WithStartDate(base))
	require.NoError(t, orders.Create(ctx, o))
	sec := testutil.NewTestSection("Ironing")
	require.NoError(t, sections.Create(ctx, sec))
	require.NoError(t, operations.Create(ctx,
		testutil.NewTestOperation(o.ID, sec.ID, testutil.WithNorm(10, 0))))

	svc := newScheduleServiceAt(orders, operations, sections, workers, base)
	require.NoError(t, svc.ScheduleOrder(ctx, o.ID, false))

	got, err := operations.ListByOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, got[0].ScheduledEndAt.Equal(base.Add(time.Hour)),
		"unknown norm must default to a one hour slot")
}

func TestScheduleOrder_MissingOrderIsNoop(t *testing.T) {
	orders, operations, sections, workers, _ := setupRepos(t)
	svc := NewScheduleService(orders, operations, sections, workers)

	assert.NoError(t, svc.ScheduleOrder(context.Background(), "no-such-order", true))
}

func TestScheduleOrder_EmptyRouteIsNoop(t *testing.T) {
	orders, operations, sections, workers, _ := setupRepos(t)
	ctx := context.Background()

	o := testutil.NewTestOrder("Coat")
	require.NoError(t, orders.Create(ctx, o))

	svc := NewScheduleService(orders, operations, sections, workers)
	assert.NoError(t, svc.ScheduleOrder(ctx, o.ID, true))
}

func TestScheduleOrder_RecomputeIsIdempotent(t *testing.T) {
	orders, operations, sections, workers, _ := setupRepos(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	o := testutil.NewTestOrder("Jacket", testutil.WithStartDate(base))
	require.NoError(t, orders.Create(ctx, o))
	sec := testutil.NewTestSection("Cutting")
	require.NoError(t, sections.Create(ctx, sec))
	require.NoError(t, operations.Create(ctx, testutil.NewTestOperation(o.ID, sec.ID, testutil.WithSortOrder(1))))
	require.NoError(t, operations.Create(ctx, testutil.NewTestOperation(o.ID, sec.ID, testutil.WithSortOrder(2))))

	svc := newScheduleServiceAt(orders, operations, sections, workers, base)
	require.NoError(t, svc.ScheduleOrder(ctx, o.ID, false))
	first, err := operations.ListByOrder(ctx, o.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ScheduleOrder(ctx, o.ID, false))
	second, err := operations.ListByOrder(ctx, o.ID)
	require.NoError(t, err)

	for i := range first {
		assert.True(t, second[i].ScheduledStartAt.Equal(*first[i].ScheduledStartAt))
		assert.True(t, second[i].ScheduledEndAt.Equal(*first[i].ScheduledEndAt))
	}
}

func TestScheduleOrder_ObserverSeesRun(t *testing.T) {
	orders, operations, sections, workers, _ := setupRepos(t)
	ctx := context.Background()

	o := testutil.NewTestOrder("Vest")
	require.NoError(t, orders.Create(ctx, o))

	obs := &capturingObserver{}
	svc := NewScheduleService(orders, operations, sections, workers, obs)
	require.NoError(t, svc.ScheduleOrder(ctx, o.ID, false))

	require.Len(t, obs.events, 1)
	assert.Equal(t, "schedule_order", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
}

type capturingObserver struct {
	events []UseCaseEvent
}

func (c *capturingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	c.events = append(c.events, e)
}
