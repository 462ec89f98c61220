// Package sync contains the orchestrator that drives a full library
// synchronization run.
//
// A run walks a fixed phase sequence: Init (blacklist refresh, option
// validation), Fetching Owner Lists (first 10% of progress), Processing Items
// (next 80%, one pass over the union of all owned items), Writing (one bulk
// upsert followed by best-effort media mirroring), and a terminal Completed or
// Failed. Individual item failures are counted, not fatal; only store-level
// errors fail a run.
package sync
