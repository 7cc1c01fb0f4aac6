package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/toyz/navs13/internal/utils"
)

const (
	// RequestIDHeader carries the request identifier in both directions
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the context key holding the request identifier
	RequestIDKey = "request_id"
)

// RequestID propagates the caller's X-Request-ID or assigns a fresh UUID
func RequestID() MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx RequestContext) error {
			id := ctx.Header(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			ctx.Set(RequestIDKey, id)
			ctx.SetHeader(RequestIDHeader, id)
			return next(ctx)
		}
	}
}

// AccessLog reports every request at verbose level
func AccessLog(diagnostics *utils.DiagnosticSystem) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx RequestContext) error {
			start := time.Now()
			err := next(ctx)
			diagnostics.Verbose("%s %s from %s [%v] in %s", ctx.Method(), ctx.Path(), ctx.RealIP(), ctx.Get(RequestIDKey), time.Since(start))
			return err
		}
	}
}
