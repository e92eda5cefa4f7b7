// Package server wires and runs the application's HTTP server.
//
// It provides orchestration of the server lifecycle, including startup of the
// background workers, signal handling, and graceful shutdown.
package server
