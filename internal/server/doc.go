// Package server runs the registry's HTTP transport.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
