package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkravets/tsekh/internal/repository"
	"github.com/vkravets/tsekh/internal/testutil"
)

func TestSectionService_CreateAndUpdateLabels(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	svc := NewSectionService(repository.NewSQLiteSectionRepo(database), testutil.NewTestUoW(database))

	sec := testutil.NewTestSection("Cutting", testutil.WithSectionLabels("Cutting", "Trimming"))
	require.NoError(t, svc.Create(ctx, sec))

	sec.OperationTypes = []string{"Cutting"}
	require.NoError(t, svc.Update(ctx, sec))

	got, err := svc.GetByID(ctx, sec.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cutting"}, got.OperationTypes)
}

func TestSectionService_UpdateRollsBackOnLabelFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	repo := repository.NewSQLiteSectionRepo(database)
	sec := testutil.NewTestSection("Sewing", testutil.WithSectionLabels("Sewing"))
	require.NoError(t, NewSectionService(repo, testutil.NewTestUoW(database)).Create(ctx, sec))

	// Row update succeeds, label rewrite fails; the whole change must
	// roll back.
	boom := errors.New("label write failed")
	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	svc := NewSectionService(repo, failing)

	sec.Name = "Sewing II"
	sec.OperationTypes = []string{"Sewing", "Finishing"}
	err := svc.Update(ctx, sec)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	got, err := repo.GetByID(ctx, sec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sewing", got.Name)
	assert.Equal(t, []string{"Sewing"}, got.OperationTypes)
}
