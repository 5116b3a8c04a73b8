// Package server wires and runs the application's HTTP transport.
//
// It provides startup, signal handling, and graceful shutdown: on SIGTERM,
// SIGINT, or SIGQUIT the HTTP listener is drained before control returns to
// the composition root, which then closes the database connection.
package server
