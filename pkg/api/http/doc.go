// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - SPARQL query relay
//   - Connection testing and repository listing
//   - The bundled frontend (landing page and static assets)
//   - Health checks
//   - Prometheus metrics
package http
