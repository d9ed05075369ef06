// Package server runs the development backend's HTTP transport.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown bounded by a timeout.
package server
