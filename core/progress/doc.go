// Package progress tracks the state of long-running synchronization runs.
//
// A run is identified by an opaque operation id issued when it starts. The
// orchestrator overwrites the run's Operation state as it advances; external
// pollers read it through TryGetProgress without blocking the run. Terminal
// results are stored separately and are set exactly once.
//
// The tracker is intentionally in-memory only. Operation ids do not survive a
// process restart and are not shared between instances; an interrupted run is
// simply started again.
package progress
