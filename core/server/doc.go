// Package server holds the HTTP server configuration and the shared Fiber setup.
//
// NewApp wires the middleware every route needs (RayID, request logging) and an ErrorHandler
// that answers with JSON: fiber errors keep their status, anything else becomes a logged
// {"error": "Internal Server Error"}. NotFound is the catch-all registered after the features.
//
// The start command owns the application lifecycle; Config only defines where it listens and
// how long graceful shutdown may take.
package server
