// Package library is the feature surface of the game synchronization engine.
//
// The service layer wires the synchronization subpackages together and exposes
// four operations: starting a background sync run, polling its progress,
// reading its terminal result, and synchronously refetching a single game.
// The handler maps those onto the HTTP API.
package library
