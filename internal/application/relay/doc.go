// Package relay implements the query relay service: the application core
// that forwards SPARQL queries, connection probes, and repository listings
// to a GraphDB store.
//
// The service is stateless and safe for concurrent use. Each call:
//   - detaches caller cancellation, so a client disconnect never aborts an
//     in-flight upstream request
//   - records an outcome metric (success, upstream_error, connection_error)
//   - logs the result with structured fields
package relay
