// Package http implements the webhook receiver's HTTP transport layer.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as webhook signature verification, request tracing, and
// access logging are handled in this package before requests are delegated
// to the service layer.
package http
