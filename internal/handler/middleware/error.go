package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"pickup-rsvp/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that a handler recorded with c.Error but did not
// write itself. Usecase errors are mapped with httperr.StatusOf.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok {
			c.JSON(resp.Status, resp)
			return
		}
		status, msg := httperr.StatusOf(last.Err)
		c.JSON(status, httperr.NewResponse(status, msg))
	}
}

// Recovery turns a panic into the generic 500 body. Aborted handlers keep
// panicking so net/http can drop the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if r == http.ErrAbortHandler {
				panic(r)
			}
			slog.ErrorContext(c.Request.Context(), "panic recovered",
				"request_id", GetRequestID(c),
				"route", c.FullPath(),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
		}()
		c.Next()
	}
}
