// Package server runs the application's HTTP server lifecycle: startup,
// stop-signal handling, and graceful shutdown.
package server
