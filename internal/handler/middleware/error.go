package middleware

import (
	"log/slog"
	"net/http"

	"venue-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors a handler recorded without writing a body.
// Public errors carry their response; the last private one is mapped by category.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if resp, ok := err.Meta.(httperr.Response); ok && err.IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		last := c.Errors.Last()
		status := httperr.StatusOf(last.Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = http.StatusText(status)
		if status == http.StatusInternalServerError {
			resp.Error.Message = "Internal server error"
			slog.Error("unhandled request error",
				"path", c.FullPath(),
				"error", last.Err.Error())
		}
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				// a stream that already flushed cannot switch to JSON
				if c.Writer.Written() {
					slog.Error("recovered from panic mid-response", "error", rec, "path", c.Request.URL.Path)
					c.Abort()
					return
				}
				slog.Error("recovered from panic", "error", rec, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
