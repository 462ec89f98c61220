// Package currency converts price quotes into the reference currency.
//
// Rates come from a secondary exchange-rate service. Because that service
// occasionally serves malformed or stale tables, every fetched rate passes an
// explicit sanity bound (ImplausibleRateThreshold) before it is used; a rate
// at or above the bound is retried a few times and then given up on. Giving
// up yields rate 0, which callers treat as "keep the original quote" - a
// wrong price display is preferable to a corrupted one.
package currency
