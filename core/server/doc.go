// Package server holds the HTTP server configuration.
//
// It defines the listen port, the API key protecting the endpoints, and the
// catalog provider namespace under which ownership records are stored.
package server
