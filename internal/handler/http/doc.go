// Package http implements the REST API of the server.
//
// It wires the chi router, request handlers and middleware. Tracing, access
// logging, compression, metrics, authentication and per-user rate limiting
// are handled here before requests reach the service layer.
package http
