package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOperationDuration(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		norm     float64
		want     time.Duration
	}{
		{"10 units at 6 min each", 10, 6, 60 * time.Minute},
		{"fractional norm", 100, 1.5, 150 * time.Minute},
		{"single unit", 1, 45, 45 * time.Minute},
		{"zero quantity falls back", 0, 6, FallbackDuration},
		{"zero norm falls back", 10, 0, FallbackDuration},
		{"negative norm falls back", 10, -2, FallbackDuration},
		{"both zero falls back", 0, 0, FallbackDuration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, OperationDuration(tc.quantity, tc.norm))
		})
	}
}

func TestOperationDuration_NeverZero(t *testing.T) {
	for qty := -2; qty <= 2; qty++ {
		for _, norm := range []float64{-1, 0, 0.5, 3} {
			d := OperationDuration(qty, norm)
			assert.Greater(t, d, time.Duration(0), "qty=%d norm=%v", qty, norm)
		}
	}
}
