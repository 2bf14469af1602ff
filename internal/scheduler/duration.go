package scheduler

import "time"

// FallbackDuration is substituted whenever quantity × norm comes out
// non-positive. A zero-length operation would collapse the timeline and
// hide the data-entry error; a visible one-hour block keeps the chain sane
// while making the anomaly easy to spot.
const FallbackDuration = 60 * time.Minute

// OperationDuration computes how long an operation takes: quantity times
// the per-unit norm, in minutes.
func OperationDuration(quantity int, normPerUnitMin float64) time.Duration {
	minutes := float64(quantity) * normPerUnitMin
	if minutes <= 0 {
		return FallbackDuration
	}
	return time.Duration(minutes * float64(time.Minute))
}
