// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as token authentication, rate limiting,
// request tracing and access logging are handled in this package before
// requests are delegated to the service layer.
//
// Successful responses are wrapped as {"data": ...}; every failure is
// rendered as {"errors": {"<field or message>": ["..."]}}.
package http
