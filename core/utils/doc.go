// Package utils provides tolerant type conversion helpers.
//
// The catalog upstream returns loosely typed JSON where numbers may be
// encoded as strings, booleans as 0/1, and fields may be absent entirely.
// These helpers convert whatever arrives into the expected Go type without
// failing, which keeps a single malformed field from aborting an entire
// synchronization run.
package utils
