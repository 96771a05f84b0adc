// Package server runs the HTTP API together with the background workers.
//
// It owns startup, signal handling and graceful shutdown: on SIGTERM,
// SIGINT or SIGQUIT the HTTP server stops accepting requests, in-flight
// requests get a grace period and the workers are cancelled.
package server
