package adapters

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/toyz/navs13/internal/server"
)

// EchoAdapter implements server.WebServer for Echo v4
type EchoAdapter struct {
	engine *echo.Echo
}

// NewEchoAdapter creates a new Echo adapter
func NewEchoAdapter(e *echo.Echo) *EchoAdapter {
	return &EchoAdapter{engine: e}
}

// NewDefaultEchoAdapter creates a new Echo adapter with a quiet Echo instance
func NewDefaultEchoAdapter() *EchoAdapter {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, server.NewHttpError(he.Code, http.StatusText(he.Code)))
			return
		}
		code, body := server.ErrorResponse(err)
		_ = c.JSON(code, body)
	}
	return NewEchoAdapter(e)
}

// RegisterRoute registers a route with the Echo server
func (ea *EchoAdapter) RegisterRoute(method, path string, handler server.HandlerFunc, middlewares ...server.MiddlewareFunc) {
	echoMiddlewares := make([]echo.MiddlewareFunc, len(middlewares))
	for i, mw := range middlewares {
		echoMiddlewares[i] = ea.convertMiddleware(mw)
	}

	ea.engine.Add(method, path, ea.convertHandler(handler), echoMiddlewares...)
}

// Use registers a global middleware with the Echo server
func (ea *EchoAdapter) Use(middleware server.MiddlewareFunc) {
	ea.engine.Use(ea.convertMiddleware(middleware))
}

// Start starts the Echo server
func (ea *EchoAdapter) Start(addr string) error {
	if err := ea.engine.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts the Echo server down
func (ea *EchoAdapter) Stop(ctx context.Context) error {
	return ea.engine.Shutdown(ctx)
}

// Name returns the adapter name
func (ea *EchoAdapter) Name() string {
	return "Echo"
}

// ServeHTTP dispatches a request to the Echo engine
func (ea *EchoAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ea.engine.ServeHTTP(w, r)
}

// convertHandler converts server.HandlerFunc to echo.HandlerFunc
func (ea *EchoAdapter) convertHandler(handler server.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := handler(&EchoRequestContext{context: c}); err != nil {
			code, body := server.ErrorResponse(err)
			return c.JSON(code, body)
		}
		return nil
	}
}

// convertMiddleware converts server.MiddlewareFunc to echo.MiddlewareFunc
func (ea *EchoAdapter) convertMiddleware(middleware server.MiddlewareFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			serverNext := func(ctx server.RequestContext) error {
				return next(c)
			}

			if err := middleware(serverNext)(&EchoRequestContext{context: c}); err != nil {
				code, body := server.ErrorResponse(err)
				return c.JSON(code, body)
			}
			return nil
		}
	}
}

// EchoRequestContext implements server.RequestContext for Echo
type EchoRequestContext struct {
	context echo.Context
}

// Method returns the HTTP method
func (erc *EchoRequestContext) Method() string {
	return erc.context.Request().Method
}

// Path returns the request path
func (erc *EchoRequestContext) Path() string {
	return erc.context.Request().URL.Path
}

// RealIP returns the real IP address
func (erc *EchoRequestContext) RealIP() string {
	return erc.context.RealIP()
}

// QueryParam returns a query parameter
func (erc *EchoRequestContext) QueryParam(key string) string {
	return erc.context.QueryParam(key)
}

// Header returns a request header
func (erc *EchoRequestContext) Header(key string) string {
	return erc.context.Request().Header.Get(key)
}

// SetHeader sets a response header
func (erc *EchoRequestContext) SetHeader(key, value string) {
	erc.context.Response().Header().Set(key, value)
}

// Get returns a value from context
func (erc *EchoRequestContext) Get(key string) interface{} {
	return erc.context.Get(key)
}

// Set sets a value in context
func (erc *EchoRequestContext) Set(key string, val interface{}) {
	erc.context.Set(key, val)
}

// JSON writes a JSON response
func (erc *EchoRequestContext) JSON(code int, body interface{}) error {
	return erc.context.JSON(code, body)
}
