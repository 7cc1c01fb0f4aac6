package adapters

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/toyz/navs13/internal/server"
)

// GinAdapter implements server.WebServer for the Gin framework
type GinAdapter struct {
	engine *gin.Engine

	mu      sync.Mutex
	server  *http.Server
	stopped bool
}

// NewGinAdapter creates a new Gin adapter
func NewGinAdapter(g *gin.Engine) *GinAdapter {
	return &GinAdapter{engine: g}
}

// NewDefaultGinAdapter creates a Gin adapter with panic recovery and no
// request logger
func NewDefaultGinAdapter() *GinAdapter {
	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	return NewGinAdapter(engine)
}

// RegisterRoute registers a route with the Gin engine
func (ga *GinAdapter) RegisterRoute(method, path string, handler server.HandlerFunc, middlewares ...server.MiddlewareFunc) {
	handlers := make([]gin.HandlerFunc, 0, len(middlewares)+1)
	for _, middleware := range middlewares {
		handlers = append(handlers, ga.convertMiddleware(middleware))
	}
	handlers = append(handlers, ga.convertHandler(handler))
	ga.engine.Handle(method, path, handlers...)
}

// Use registers a global middleware with the Gin engine
func (ga *GinAdapter) Use(middleware server.MiddlewareFunc) {
	ga.engine.Use(ga.convertMiddleware(middleware))
}

// Start serves the Gin engine through an http.Server so that Stop can shut
// it down gracefully
func (ga *GinAdapter) Start(addr string) error {
	ga.mu.Lock()
	if ga.stopped {
		ga.mu.Unlock()
		return nil
	}
	srv := &http.Server{Addr: addr, Handler: ga.engine}
	ga.server = srv
	ga.mu.Unlock()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down. A later Start returns immediately.
func (ga *GinAdapter) Stop(ctx context.Context) error {
	ga.mu.Lock()
	srv := ga.server
	ga.stopped = true
	ga.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Name returns the adapter name
func (ga *GinAdapter) Name() string {
	return "Gin"
}

// ServeHTTP dispatches a request to the Gin engine
func (ga *GinAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ga.engine.ServeHTTP(w, r)
}

// convertHandler converts server.HandlerFunc to gin.HandlerFunc
func (ga *GinAdapter) convertHandler(handler server.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler(&GinRequestContext{ctx: c}); err != nil {
			code, body := server.ErrorResponse(err)
			c.JSON(code, body)
		}
	}
}

// convertMiddleware converts server.MiddlewareFunc to gin.HandlerFunc
func (ga *GinAdapter) convertMiddleware(middleware server.MiddlewareFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		// next resumes the Gin chain
		next := func(rc server.RequestContext) error {
			c.Next()
			return nil
		}

		if err := middleware(next)(&GinRequestContext{ctx: c}); err != nil {
			code, body := server.ErrorResponse(err)
			c.AbortWithStatusJSON(code, body)
		}
	}
}

// GinRequestContext implements server.RequestContext for Gin
type GinRequestContext struct {
	ctx *gin.Context
}

// Method returns the HTTP method
func (grc *GinRequestContext) Method() string {
	return grc.ctx.Request.Method
}

// Path returns the request path
func (grc *GinRequestContext) Path() string {
	return grc.ctx.Request.URL.Path
}

// RealIP returns the client IP
func (grc *GinRequestContext) RealIP() string {
	return grc.ctx.ClientIP()
}

// QueryParam returns a query parameter
func (grc *GinRequestContext) QueryParam(key string) string {
	return grc.ctx.Query(key)
}

// Header returns a request header
func (grc *GinRequestContext) Header(key string) string {
	return grc.ctx.GetHeader(key)
}

// SetHeader sets a response header
func (grc *GinRequestContext) SetHeader(key, value string) {
	grc.ctx.Header(key, value)
}

// Get returns a value from context
func (grc *GinRequestContext) Get(key string) interface{} {
	value, _ := grc.ctx.Get(key)
	return value
}

// Set sets a value in context
func (grc *GinRequestContext) Set(key string, val interface{}) {
	grc.ctx.Set(key, val)
}

// JSON writes a JSON response
func (grc *GinRequestContext) JSON(code int, body interface{}) error {
	grc.ctx.JSON(code, body)
	return nil
}
