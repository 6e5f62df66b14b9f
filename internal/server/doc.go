// Package server runs the application's HTTP listener.
//
// It owns the listener lifecycle: startup, serving until the caller's
// context is cancelled, and graceful shutdown bounded by a timeout.
package server
