// Package controller contains HTTP middlewares used by the API server.
//
//   - WithCORS: CORS headers for browser clients of the calculation API.
//   - WithLogger: request-scoped logger and request ID, plus an access log line.
//   - WithMetrics: prometheus request counters and latency histograms.
//   - WithPprof: runtime profiling endpoints under a configurable prefix.
package controller
