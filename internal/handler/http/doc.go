// Package http implements the HTTP transport layer of the application.
//
// It serves the server-rendered pages (landing, registration, login and the
// protected secrets page), keeps the signed session cookie and exposes the
// health and metrics endpoints. Request tracing, access logging, panic
// recovery and the session gate are handled here before requests reach the
// service layer.
package http
