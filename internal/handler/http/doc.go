// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the endpoints
// used by an Apple Pay JS web page: merchant validation, the domain
// association file, version and health. Cross-cutting concerns such as panic
// recovery, request tracing, access logging, security headers and response
// compression are handled here before requests reach the service layer.
package http
