package progress

import "sync"

// Phase names reported by synchronization runs.
const (
	PhaseInit               = "Init"
	PhaseFetchingOwnerLists = "Fetching Owner Lists"
	PhaseProcessingItems    = "Processing Items"
	PhaseWriting            = "Writing"
	PhaseRateLimited        = "Rate Limited"
	PhaseCompleted          = "Completed"
	PhaseFailed             = "Failed"
)

// Operation is the pollable state of one synchronization run. Writes are
// last-write-wins; no history is retained.
type Operation struct {
	OperationID string `json:"operationId"`
	// Progress is the overall completion percentage, 0-100.
	Progress int `json:"progress"`
	// Phase names the current stage of the run.
	Phase string `json:"phase"`
	// Message is a human-readable description of the current state.
	Message string `json:"message"`
	// RetryAfterSeconds hints how long the run will sleep when throttled.
	// Zero when the run is not waiting on the upstream.
	RetryAfterSeconds int `json:"retryAfterSeconds,omitempty"`
}

// Tracker is a process-wide map from operation id to run state. It is safe
// for one writer (the orchestrator) and any number of concurrent pollers.
// State lives only in process memory: ids issued by one instance are not
// visible to another, and everything is lost on restart. Runs are re-run,
// not resumed.
// The result type R is the terminal summary produced by a run.
type Tracker[R any] struct {
	mu         sync.RWMutex
	operations map[string]Operation
	results    map[string]R
}

// NewTracker creates an empty tracker.
func NewTracker[R any]() *Tracker[R] {
	return &Tracker[R]{
		operations: make(map[string]Operation),
		results:    make(map[string]R),
	}
}

// SetProgress overwrites the state for the operation id.
func (t *Tracker[R]) SetProgress(operationID string, percent int, phase, message string) {
	t.setOperation(Operation{
		OperationID: operationID,
		Progress:    percent,
		Phase:       phase,
		Message:     message,
	})
}

// SetThrottled records a rate-limited state including the retry-after hint.
func (t *Tracker[R]) SetThrottled(operationID string, percent int, message string, retryAfterSeconds int) {
	t.setOperation(Operation{
		OperationID:       operationID,
		Progress:          percent,
		Phase:             PhaseRateLimited,
		Message:           message,
		RetryAfterSeconds: retryAfterSeconds,
	})
}

func (t *Tracker[R]) setOperation(op Operation) {
	t.mu.Lock()
	t.operations[op.OperationID] = op
	t.mu.Unlock()
}

// TryGetProgress returns the current state for the operation id. Unknown ids
// report not found, never a zero record.
func (t *Tracker[R]) TryGetProgress(operationID string) (Operation, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	op, ok := t.operations[operationID]
	return op, ok
}

// SetResult stores the terminal result for the operation id. Results are set
// once when a run reaches a terminal phase and are immutable afterwards.
func (t *Tracker[R]) SetResult(operationID string, result R) {
	t.mu.Lock()
	if _, exists := t.results[operationID]; !exists {
		t.results[operationID] = result
	}
	t.mu.Unlock()
}

// TryGetResult returns the terminal result for the operation id, if the run
// has reached a terminal phase.
func (t *Tracker[R]) TryGetResult(operationID string) (R, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	result, ok := t.results[operationID]
	return result, ok
}
