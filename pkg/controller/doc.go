// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - CORS: Adds CORS headers for a configured origin and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Observes request latency per route pattern.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
