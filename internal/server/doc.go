// Package server runs the sheetcharts transports: the REST API over HTTP and
// the gRPC health endpoint. Background jobs such as the upload sweeper are
// started alongside them and share the same shutdown signal.
package server
