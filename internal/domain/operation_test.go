package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestCanTransition_HappyPath(t *testing.T) {
	cases := []struct {
		from, to OperationStatus
		ok       bool
	}{
		{OperationNotStarted, OperationInProgress, true},
		{OperationInProgress, OperationDone, true},
		{OperationInProgress, OperationPaused, true},
		{OperationPaused, OperationInProgress, true},
		{OperationNotStarted, OperationDone, false},
		{OperationDone, OperationInProgress, false},
		{OperationPaused, OperationDone, false},
		{OperationDone, OperationDone, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestCanTransition_ProblemReachableFromEverywhere(t *testing.T) {
	for _, from := range []OperationStatus{OperationNotStarted, OperationInProgress, OperationPaused, OperationDone} {
		assert.True(t, CanTransition(from, OperationProblem), "from=%s", from)
	}
}

func TestTransition_SetsStatusAndTimestamp(t *testing.T) {
	op := &Operation{Status: OperationNotStarted}
	require.NoError(t, op.Transition(OperationInProgress, testNow))
	assert.Equal(t, OperationInProgress, op.Status)
	assert.Equal(t, testNow, op.UpdatedAt)
}

func TestTransition_RejectsIllegalMove(t *testing.T) {
	op := &Operation{Status: OperationNotStarted}
	err := op.Transition(OperationDone, testNow)
	require.Error(t, err)
	assert.Equal(t, OperationNotStarted, op.Status)
}

func TestOrderBaseClock(t *testing.T) {
	now := testNow
	declared := testNow.AddDate(0, 0, 3)

	o := &Order{}
	assert.Equal(t, now, o.BaseClock(now))

	o.StartDate = &declared
	assert.Equal(t, declared, o.BaseClock(now))
}

func TestWorkerHasCapability(t *testing.T) {
	w := &Worker{OperationTypes: []string{"Cutting", "Sewing"}}
	assert.True(t, w.HasCapability("Sewing"))
	assert.False(t, w.HasCapability("Packing"))
}
