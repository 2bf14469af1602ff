package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vkravets/tsekh/internal/domain"
)

var t0 = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func at(min int) time.Time { return t0.Add(time.Duration(min) * time.Minute) }

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical windows", at(0), at(60), at(0), at(60), true},
		{"partial overlap", at(0), at(60), at(30), at(90), true},
		{"containment", at(0), at(120), at(30), at(60), true},
		{"touching boundary is free", at(0), at(60), at(60), at(120), false},
		{"touching boundary reversed", at(60), at(120), at(0), at(60), false},
		{"disjoint", at(0), at(30), at(90), at(120), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
			// The relation is symmetric.
			assert.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
		})
	}
}

func TestBusyWorkers(t *testing.T) {
	windows := []domain.BusyWindow{
		{OperationID: "op1", WorkerID: "w1", StartAt: at(0), EndAt: at(60)},
		{OperationID: "op2", WorkerID: "w2", StartAt: at(60), EndAt: at(120)},
		{OperationID: "op3", WorkerID: "w3", StartAt: at(200), EndAt: at(260)},
	}

	busy := BusyWorkers(windows, at(30), at(90))
	assert.Contains(t, busy, "w1")
	assert.Contains(t, busy, "w2")
	assert.NotContains(t, busy, "w3")

	// Back-to-back with w1's window: w1 is free again.
	busy = BusyWorkers(windows, at(120), at(180))
	assert.Empty(t, busy)
}

func TestPickWorker_Deterministic(t *testing.T) {
	qualified := []domain.Worker{{ID: "w3"}, {ID: "w1"}, {ID: "w2"}}

	picked := PickWorker(qualified, nil)
	if assert.NotNil(t, picked) {
		assert.Equal(t, "w1", picked.ID, "lowest ID wins regardless of input order")
	}

	picked = PickWorker(qualified, map[string]struct{}{"w1": {}})
	if assert.NotNil(t, picked) {
		assert.Equal(t, "w2", picked.ID)
	}
}

func TestPickWorker_AllBusy(t *testing.T) {
	qualified := []domain.Worker{{ID: "w1"}, {ID: "w2"}}
	busy := map[string]struct{}{"w1": {}, "w2": {}}
	assert.Nil(t, PickWorker(qualified, busy))
}

func TestQualifiedWorkers_TwoTierUnion(t *testing.T) {
	secID := "sec-cut"
	section := domain.Section{ID: secID, Name: "Cutting"}

	workers := []domain.Worker{
		{ID: "w1", SectionID: &secID},                                     // direct affinity
		{ID: "w2", OperationTypes: []string{"Cutting"}},                   // capability label
		{ID: "w3", SectionID: &secID, OperationTypes: []string{"Cutting"}}, // both, must not duplicate
		{ID: "w4", OperationTypes: []string{"Sewing"}},                    // unrelated
		{ID: "w5"}, // no affinity at all
	}

	got := QualifiedWorkers(section, workers)
	ids := make([]string, len(got))
	for i, w := range got {
		ids[i] = w.ID
	}
	assert.ElementsMatch(t, []string{"w1", "w2", "w3"}, ids)
}

func TestQualifiedWorkers_EmptySectionName(t *testing.T) {
	// A section with no name must not accidentally match workers whose
	// capability list contains an empty label.
	section := domain.Section{ID: "sec-x", Name: ""}
	workers := []domain.Worker{{ID: "w1", OperationTypes: []string{""}}}

	assert.Empty(t, QualifiedWorkers(section, workers))
}
