// Package server exposes NAVS13 validation and generation over HTTP behind a
// framework agnostic interface. Engine adapters live in the adapters
// subpackage.
package server

import (
	"context"
	"fmt"
	"net/http"
)

// WebServer defines the contract for web server implementations
type WebServer interface {
	// RegisterRoute registers handler for method and a static path
	RegisterRoute(method, path string, handler HandlerFunc, middlewares ...MiddlewareFunc)

	// Use registers a global middleware. It must be called before routes
	// are registered.
	Use(middleware MiddlewareFunc)

	// Start blocks serving addr until Stop is called or the listener fails
	Start(addr string) error
	// Stop gracefully shuts the server down
	Stop(ctx context.Context) error

	// Name returns the engine name
	Name() string
}

// RequestContext provides a framework-agnostic view of an HTTP exchange
type RequestContext interface {
	Method() string
	Path() string
	RealIP() string

	QueryParam(key string) string

	Header(key string) string
	SetHeader(key, value string)

	// Get and Set store request scoped values
	Get(key string) interface{}
	Set(key string, val interface{})

	JSON(code int, body interface{}) error
}

// HandlerFunc defines the signature for HTTP handlers
type HandlerFunc func(RequestContext) error

// MiddlewareFunc defines the signature for middleware
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// HttpError represents an HTTP error with a specific status code and message
type HttpError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *HttpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// NewHttpError creates a new HttpError with the given status code and message
func NewHttpError(statusCode int, message string) *HttpError {
	return &HttpError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ErrBadRequest creates a 400 Bad Request error
func ErrBadRequest(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message)
}

// ErrBadRequestWithDetails creates a 400 Bad Request error with details
func ErrBadRequestWithDetails(message string, details any) *HttpError {
	return &HttpError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Details:    details,
	}
}

// ErrorResponse maps a handler error to a status code and JSON body. Every
// adapter renders errors through it so that all engines answer alike.
func ErrorResponse(err error) (int, interface{}) {
	if httpErr, ok := err.(*HttpError); ok {
		return httpErr.StatusCode, httpErr
	}
	return http.StatusInternalServerError, NewHttpError(http.StatusInternalServerError, err.Error())
}
