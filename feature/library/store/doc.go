// Package store persists game records and blacklist entries.
//
// The Store interface exposes document-style operations: point lookup by
// item id, an id-only projection of the whole collection, and an idempotent
// bulk upsert that fully replaces records on conflict. The GORM
// implementation keeps the mutable parts of a record (price, platforms,
// media, ownership) in JSON columns, so the relational schema stays stable
// while the record shape evolves.
package store
