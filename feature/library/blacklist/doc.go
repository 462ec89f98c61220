// Package blacklist caches the set of permanently excluded item ids.
//
// Blacklist entries are managed out-of-band (CLI or direct store access);
// the synchronization engine only reads them. The cache trades staleness for
// round-trips: a full refresh at the start of each run, point lookups with
// positive-only promotion in between.
package blacklist
