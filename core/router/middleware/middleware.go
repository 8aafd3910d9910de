package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"portal/core/logger"
	"portal/core/router"
	"portal/core/types"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-Id"

// RequestIDKey is the context key holding the request id
const RequestIDKey = "request_id"

// RequestID reuses an incoming X-Request-Id or generates one, stores it on the
// context and echoes it in the response.
func RequestID() router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) error {
			id := c.Request.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			c.Set(RequestIDKey, id)
			c.Header(RequestIDHeader, id)
			return next(c)
		}
	}
}

// Recovery converts a panic in a handler into a 500 response
func Recovery(log logger.Logger) router.MiddlewareFunc {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(c *router.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("Recovered from panic",
						logger.String("path", c.Request.URL.Path),
						logger.String("request_id", c.GetString(RequestIDKey)),
						logger.String("panic", fmt.Sprint(r)),
						logger.String("stack", string(debug.Stack())))
					if !c.Writer.Written() {
						err = c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Internal server error"})
					}
				}
			}()
			return next(c)
		}
	}
}
