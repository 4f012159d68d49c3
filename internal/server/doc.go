// Package server runs the HTTP transport of the merchant validation service.
//
// It owns the listener lifecycle: binding, serving, OS signal handling and
// graceful shutdown bounded by the configured timeout.
package server
