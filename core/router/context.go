package router

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

// ResponseWriter records the status code and whether a body was written
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

// WriteHeader records the status before delegating
func (w *ResponseWriter) WriteHeader(code int) {
	if w.written {
		return
	}
	w.status = code
	w.written = true
	w.ResponseWriter.WriteHeader(code)
}

// Write marks the response as written with an implicit 200
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Status returns the status code sent, 200 when nothing was sent yet
func (w *ResponseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Written reports whether headers were already sent
func (w *ResponseWriter) Written() bool {
	return w.written
}

// Context is the per-request handle passed to handlers
type Context struct {
	Request *http.Request
	Writer  *ResponseWriter

	mu   sync.RWMutex
	keys map[string]any
}

func newContext(w http.ResponseWriter, req *http.Request) *Context {
	return &Context{
		Request: req,
		Writer:  &ResponseWriter{ResponseWriter: w},
	}
}

// Context returns the request context
func (c *Context) Context() context.Context {
	return c.Request.Context()
}

// Query returns the first value of a query parameter
func (c *Context) Query(key string) string {
	return c.Request.URL.Query().Get(key)
}

// DefaultQuery returns a query parameter or fallback when it is absent
func (c *Context) DefaultQuery(key, fallback string) string {
	if values, ok := c.Request.URL.Query()[key]; ok && len(values) > 0 {
		return values[0]
	}
	return fallback
}

// Param returns a path parameter
func (c *Context) Param(key string) string {
	return mux.Vars(c.Request)[key]
}

// Set stores a value for the lifetime of the request
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.keys == nil {
		c.keys = make(map[string]any)
	}
	c.keys[key] = value
}

// Get reads a value stored with Set
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.keys[key]
	return value, ok
}

// GetString reads a string value stored with Set
func (c *Context) GetString(key string) string {
	if value, ok := c.Get(key); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

// ClientIP returns the caller address, honoring X-Forwarded-For and X-Real-IP
func (c *Context) ClientIP() string {
	if forwarded := c.Request.Header.Get("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(c.Request.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}

// Header sets a response header
func (c *Context) Header(key, value string) {
	c.Writer.Header().Set(key, value)
}

// JSON writes v as a JSON body with the given status
func (c *Context) JSON(status int, v any) error {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.Writer.WriteHeader(status)
	return json.NewEncoder(c.Writer).Encode(v)
}
