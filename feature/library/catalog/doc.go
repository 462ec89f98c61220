// Package catalog implements the provider-facing lookups of the sync engine:
// owner-list queries against the provider web API and per-item detail queries
// against the storefront endpoint.
//
// Detail payloads are treated as semi-structured documents. Parsing is
// permissive: unknown fields are ignored, missing fields become zero values,
// and only a structurally undecodable body counts as a failure. Every fetch
// outcome is classified into a DetailStatus variant so the calling engine can
// branch without unwinding errors.
package catalog
