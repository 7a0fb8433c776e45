// Package server runs the vault daemon's HTTP bridge.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
