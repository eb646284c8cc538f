// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
package middleware
