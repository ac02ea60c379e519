// Package graphdb provides the outbound REST client for a GraphDB
// triple-store.
//
// The client covers the two upstream calls the relay needs:
//   - SPARQL query execution via POST /repositories/{id}
//   - Repository listing via GET /rest/repositories
//
// Failures surface through two error kinds: RemoteQueryError when the
// store answers with a non-200 status, and ConnectionError when the
// outbound call cannot complete at all.
package graphdb
