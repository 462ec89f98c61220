// Package fetch implements the rate-limited upstream HTTP fetcher.
//
// The catalog upstream enforces a strict request budget. The fetcher protects
// it with two independent gates:
//  1. A concurrency semaphore bounding in-flight requests (default 3).
//  2. A pacing limiter enforcing a minimum delay between admissions
//     (default 1s), even when slots are free.
//
// Throttling responses (HTTP 429) are retried with a wait taken from the
// Retry-After header when present, otherwise exponential backoff. The retry
// budget is bounded; exceeding it surfaces ErrFetchExhausted. Any other
// non-success status fails immediately without retry.
//
// The semaphore slot is held only for the single in-flight call. Backoff
// sleeps never occupy a slot, so one throttled fetch cannot starve the rest
// of a synchronization run.
package fetch
