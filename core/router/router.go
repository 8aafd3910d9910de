package router

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"portal/core/types"

	"github.com/gorilla/mux"
)

// HandlerFunc handles a request. A returned error that was not already written
// becomes a 500 JSON response.
type HandlerFunc func(c *Context) error

// MiddlewareFunc wraps a handler
type MiddlewareFunc func(next HandlerFunc) HandlerFunc

// Router is the HTTP router used by every module
type Router struct {
	mux        *mux.Router
	middleware []MiddlewareFunc
	server     *http.Server
	mu         sync.Mutex
}

// RouterGroup registers routes below a common prefix
type RouterGroup struct {
	router *Router
	prefix string
}

// New creates an empty router
func New() *Router {
	r := &Router{mux: mux.NewRouter()}
	r.mux.NotFoundHandler = r.adapt(func(c *Context) error {
		return c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Not found"})
	})
	return r
}

// Use appends global middleware. Middleware is resolved per request, so it also
// applies to routes registered before the call.
func (r *Router) Use(middleware ...MiddlewareFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middleware = append(r.middleware, middleware...)
}

// Group creates a route group below prefix
func (r *Router) Group(prefix string) *RouterGroup {
	return &RouterGroup{router: r, prefix: strings.TrimRight(prefix, "/")}
}

// GET registers a GET route on the router root
func (r *Router) GET(path string, handler HandlerFunc) {
	r.handle(http.MethodGet, path, handler)
}

// ServeHTTP implements http.Handler
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Run starts the HTTP server and blocks until it stops. A graceful Shutdown is
// not reported as an error.
func (r *Router) Run(addr string) error {
	r.mu.Lock()
	r.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	server := r.server
	r.mu.Unlock()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops a running server
func (r *Router) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	server := r.server
	r.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

func (r *Router) handle(method, path string, handler HandlerFunc) {
	if path == "" {
		path = "/"
	}
	r.mux.Handle(path, r.adapt(handler)).Methods(method)
}

// adapt turns a HandlerFunc into an http.Handler, composing the global
// middleware at request time.
func (r *Router) adapt(handler HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.mu.Lock()
		chain := append([]MiddlewareFunc(nil), r.middleware...)
		r.mu.Unlock()

		h := handler
		for i := len(chain) - 1; i >= 0; i-- {
			h = chain[i](h)
		}

		c := newContext(w, req)
		if err := h(c); err != nil && !c.Writer.Written() {
			_ = c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		}
	})
}

// GET registers a GET route in the group
func (g *RouterGroup) GET(path string, handler HandlerFunc) {
	g.router.handle(http.MethodGet, g.prefix+path, handler)
}

