package adapters

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/toyz/navs13/internal/server"
)

// FiberAdapter wraps a Fiber app to implement server.WebServer
type FiberAdapter struct {
	app *fiber.App
}

// NewFiberAdapter creates a new Fiber adapter instance
func NewFiberAdapter() *FiberAdapter {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(server.NewHttpError(e.Code, e.Message))
			}
			code, body := server.ErrorResponse(err)
			return c.Status(code).JSON(body)
		},
	})

	return &FiberAdapter{app: app}
}

// NewDefaultFiberAdapter creates a new Fiber adapter with panic recovery
func NewDefaultFiberAdapter() *FiberAdapter {
	adapter := NewFiberAdapter()
	adapter.app.Use(recover.New())
	return adapter
}

// RegisterRoute registers a route with the Fiber app
func (fa *FiberAdapter) RegisterRoute(method, path string, handler server.HandlerFunc, middlewares ...server.MiddlewareFunc) {
	handlers := make([]fiber.Handler, 0, len(middlewares)+1)
	for _, mw := range middlewares {
		handlers = append(handlers, convertMiddlewareToFiber(mw))
	}
	handlers = append(handlers, convertHandlerToFiber(handler))

	fa.app.Add(strings.ToUpper(method), path, handlers...)
}

// Use adds middleware to the Fiber app
func (fa *FiberAdapter) Use(middleware server.MiddlewareFunc) {
	fa.app.Use(convertMiddlewareToFiber(middleware))
}

// Start starts the Fiber server
func (fa *FiberAdapter) Start(addr string) error {
	return fa.app.Listen(addr)
}

// Stop stops the Fiber server
func (fa *FiberAdapter) Stop(ctx context.Context) error {
	return fa.app.ShutdownWithContext(ctx)
}

// Name returns the adapter name
func (fa *FiberAdapter) Name() string {
	return "Fiber"
}

// Test runs req through the app without a network listener
func (fa *FiberAdapter) Test(req *http.Request) (*http.Response, error) {
	return fa.app.Test(req, -1)
}

// convertHandlerToFiber converts a server handler to a Fiber handler
func convertHandlerToFiber(handler server.HandlerFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := handler(&FiberRequestContext{ctx: c}); err != nil {
			code, body := server.ErrorResponse(err)
			return c.Status(code).JSON(body)
		}
		return nil
	}
}

// convertMiddlewareToFiber converts a server middleware to a Fiber middleware
func convertMiddlewareToFiber(middleware server.MiddlewareFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := middleware(func(ctx server.RequestContext) error {
			return c.Next()
		})(&FiberRequestContext{ctx: c})

		if err != nil {
			code, body := server.ErrorResponse(err)
			return c.Status(code).JSON(body)
		}
		return nil
	}
}

// FiberRequestContext wraps fiber.Ctx to implement server.RequestContext
type FiberRequestContext struct {
	ctx *fiber.Ctx
}

// Method returns the HTTP method
func (frc *FiberRequestContext) Method() string {
	return frc.ctx.Method()
}

// Path returns the request path
func (frc *FiberRequestContext) Path() string {
	return frc.ctx.Path()
}

// RealIP returns the client IP
func (frc *FiberRequestContext) RealIP() string {
	return frc.ctx.IP()
}

// QueryParam returns a query parameter
func (frc *FiberRequestContext) QueryParam(key string) string {
	return frc.ctx.Query(key)
}

// Header returns a request header
func (frc *FiberRequestContext) Header(key string) string {
	return frc.ctx.Get(key)
}

// SetHeader sets a response header
func (frc *FiberRequestContext) SetHeader(key, value string) {
	frc.ctx.Set(key, value)
}

// Get returns a value from the request locals
func (frc *FiberRequestContext) Get(key string) interface{} {
	return frc.ctx.Locals(key)
}

// Set stores a value in the request locals
func (frc *FiberRequestContext) Set(key string, val interface{}) {
	frc.ctx.Locals(key, val)
}

// JSON writes a JSON response
func (frc *FiberRequestContext) JSON(code int, body interface{}) error {
	return frc.ctx.Status(code).JSON(body)
}
