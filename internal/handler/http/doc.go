// Package http implements the HTTP transport layer of the bootstrap.
//
// It owns the chi router, the fixed middleware chain (CORS, security
// headers, trace id and access logging, body parsing, compression), the
// [Controller] contract through which externally supplied route groups are
// mounted under /api, and the terminal error layer that turns every failure
// into a JSON error response.
package http
