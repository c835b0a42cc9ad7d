// Package http implements the REST transport of the charting server.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, CORS and compression are handled in this
// package before requests are delegated to the service layer. Every error
// body has the shape {"success": false, "message": "..."}.
package http
