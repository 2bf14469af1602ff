package domain

type OperationStatus string

const (
	OperationNotStarted OperationStatus = "not_started"
	OperationInProgress OperationStatus = "in_progress"
	OperationPaused     OperationStatus = "paused"
	OperationDone       OperationStatus = "done"
	OperationProblem    OperationStatus = "problem"
)

// ValidOperationStatuses is the canonical set of accepted status strings.
var ValidOperationStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "paused": true,
	"done": true, "problem": true,
}

// operationTransitions lists the legal status moves. "problem" is reachable
// from every status (operator override), so that edge lives in CanTransition
// rather than in this table.
var operationTransitions = map[OperationStatus][]OperationStatus{
	OperationNotStarted: {OperationInProgress},
	OperationInProgress: {OperationPaused, OperationDone},
	OperationPaused:     {OperationInProgress},
	OperationProblem:    {OperationNotStarted, OperationInProgress, OperationPaused, OperationDone},
}

// CanTransition reports whether an operation may move from one status to another.
func CanTransition(from, to OperationStatus) bool {
	if from == to {
		return false
	}
	if to == OperationProblem {
		return true
	}
	for _, next := range operationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// LocationKind classifies where an order currently sits in production.
type LocationKind string

const (
	LocationSection   LocationKind = "section"
	LocationComplete  LocationKind = "complete"
	LocationUnplanned LocationKind = "unplanned"
)
