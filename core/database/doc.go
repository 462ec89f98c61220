// Package database manages the catalog database connection.
//
// The game catalog is persisted in a relational database through GORM, but the
// records are document-shaped: the mutable parts of a game record (ownership
// sets, price quote, media references) are stored as JSON columns, so the
// store behaves like a keyed document collection with bulk replace semantics.
//
// MySQL is the production driver. SQLite (including ":memory:") is supported
// for tests and throwaway environments.
package database
